// Package postfix tokenizes and evaluates a single postfix (RPN) line,
// producing both its value and a fully parenthesized infix rendering.
package postfix
