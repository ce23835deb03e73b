package config

import "strings"

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.Naming.Extension = strings.TrimSpace(c.Naming.Extension)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

func (c *Config) normalizePaths() error {
	for _, field := range []*string{&c.Paths.SourceDir, &c.Paths.OutputDir, &c.Manifest.Path} {
		if *field == "" {
			continue
		}
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}
