package scaffold

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/rpnsort/internal/domain"
	"github.com/aalvaropc/rpnsort/internal/ports"
)

//go:embed templates/rpnsort.yaml
var templatesFS embed.FS

const configName = "rpnsort.yaml"

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

// Init writes rpnsort.yaml into dir and makes .gitignore skip .rpnsort/.
// An existing config is left alone unless force is set.
func (i *Initializer) Init(dir string, force bool) (string, error) {
	root := filepath.Clean(dir)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", &domain.OpError{Op: "scaffold.mkdir", Kind: domain.KindExecution, Path: root, Err: err}
	}

	if err := ensureGitignore(root); err != nil {
		return "", &domain.OpError{Op: "scaffold.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	dst := filepath.Join(root, configName)
	if !force {
		if _, err := os.Stat(dst); err == nil {
			return dst, nil
		}
	}

	b, err := templatesFS.ReadFile("templates/" + configName)
	if err != nil {
		return "", &domain.OpError{Op: "scaffold.template", Kind: domain.KindExecution, Err: err}
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return "", &domain.OpError{Op: "scaffold.write", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	return dst, nil
}

func ensureGitignore(root string) error {
	const header = "# rpnsort"
	entries := []string{
		".rpnsort/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header + "\n")
	}
	for _, e := range missing {
		out.WriteString(e + "\n")
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
