package config

type FormConfig struct {
	Dir string `yaml:"output-dir"`
}

func (f *FormConfig) OutputDir() string {
	return f.Dir
}
