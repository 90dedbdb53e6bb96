package config

type yamlConfig struct {
	Rpnsort struct {
		NonFinite string `yaml:"non_finite"`

		Reader struct {
			MaxLineBytes int `yaml:"max_line_bytes"`
		} `yaml:"reader"`

		Report struct {
			Enabled *bool  `yaml:"enabled"`
			Dir     string `yaml:"dir"`
		} `yaml:"report"`

		Log struct {
			Dir   string `yaml:"dir"`
			Debug *bool  `yaml:"debug"`
		} `yaml:"log"`
	} `yaml:"rpnsort"`
}
