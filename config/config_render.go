package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/orbitbridge/depositkit/log"
	"github.com/valyala/fasttemplate"
)

const (
	templateStartTag = "{{"
	templateEndTag   = "}}"
	// maxRenderPasses bounds nested vars, a longer chain is treated as a cycle
	maxRenderPasses = 10
	keyDelimiter    = "."
)

var (
	ErrCycleInVars    = errors.New("cycle detected rendering config vars")
	ErrUndefinedVar   = errors.New("undefined config var")
	unquotedVarRegexp = regexp.MustCompile(`(?m)^(\s*[^#=\s][^=]*=\s*)(\{\{[^}]+\}\})\s*$`)
)

// FileData is the content of a config source
type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges a list of TOML sources, later ones override earlier ones,
// and replaces the {{Var}} placeholders of string values
type ConfigRender struct {
	FilesData         []FileData
	EnvironmentPrefix string
}

func NewConfigRender(filesData []FileData, envPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData:         filesData,
		EnvironmentPrefix: envPrefix,
	}
}

// Render returns the merged configuration as TOML with every var resolved
func (c *ConfigRender) Render() (string, error) {
	k, err := c.Merge()
	if err != nil {
		return "", err
	}
	if err := c.renderVars(k); err != nil {
		return "", err
	}
	out, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("error marshaling rendered config. Err: %w", err)
	}
	return string(out), nil
}

// Merge loads all the sources into a single tree
func (c *ConfigRender) Merge() (*koanf.Koanf, error) {
	k := koanf.New(keyDelimiter)
	for _, data := range c.FilesData {
		content := quoteUnquotedVars(data.Content)
		if err := k.Load(rawbytes.Provider([]byte(content)), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error merging config file %s. Err: %w", data.Name, err)
		}
	}
	return k, nil
}

func (c *ConfigRender) renderVars(k *koanf.Koanf) error {
	for pass := 0; pass < maxRenderPasses; pass++ {
		pending := 0
		for _, key := range k.Keys() {
			value := k.Get(key)
			if !hasVars(value) {
				continue
			}
			rendered, err := c.renderValue(k, key, value)
			if err != nil {
				return err
			}
			if hasVars(rendered) {
				pending++
			}
			if err := k.Set(key, rendered); err != nil {
				return fmt.Errorf("error setting rendered var %s. Err: %w", key, err)
			}
		}
		if pending == 0 {
			return nil
		}
	}
	return ErrCycleInVars
}

// renderValue walks strings, arrays and inline tables, e.g. PrivateKeys = [{Path = "{{PathRWData}}/key"}]
func (c *ConfigRender) renderValue(k *koanf.Koanf, key string, value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return fasttemplate.ExecuteFuncStringWithErr(v, templateStartTag, templateEndTag,
			func(w io.Writer, tag string) (int, error) {
				return c.resolveVar(k, key, w, tag)
			})
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			rendered, err := c.renderValue(k, key, item)
			if err != nil {
				return nil, err
			}
			out[i] = rendered
		}
		return out, nil
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for name, item := range v {
			rendered, err := c.renderValue(k, key, item)
			if err != nil {
				return nil, err
			}
			out[name] = rendered
		}
		return out, nil
	}
	return value, nil
}

func hasVars(value interface{}) bool {
	switch v := value.(type) {
	case string:
		return strings.Contains(v, templateStartTag)
	case []interface{}:
		for _, item := range v {
			if hasVars(item) {
				return true
			}
		}
	case map[string]interface{}:
		for _, item := range v {
			if hasVars(item) {
				return true
			}
		}
	}
	return false
}

// resolveVar looks the var up on the environment first and then on the merged tree
func (c *ConfigRender) resolveVar(k *koanf.Koanf, key string, w io.Writer, tag string) (int, error) {
	name := strings.TrimSpace(tag)
	if value, ok := os.LookupEnv(envVarName(c.EnvironmentPrefix, name)); ok {
		log.Debugf("config var %s of %s taken from environment", name, key)
		return w.Write([]byte(value))
	}
	if strings.EqualFold(name, key) {
		return 0, fmt.Errorf("%w: %s references itself", ErrCycleInVars, key)
	}
	if !k.Exists(name) {
		return 0, fmt.Errorf("%w: %s used on %s", ErrUndefinedVar, name, key)
	}
	return w.Write([]byte(fmt.Sprint(k.Get(name))))
}

// quoteUnquotedVars allows `Key = {{Var}}` for non string values, the decoder
// converts the rendered string back to the field type
func quoteUnquotedVars(content string) string {
	return unquotedVarRegexp.ReplaceAllString(content, `${1}"${2}"`)
}

// convertFileToToml translates a JSON config file into TOML
func convertFileToToml(fileData string, fileType string) (string, error) {
	if fileType != "json" {
		return "", fmt.Errorf("unsupported config file type: %s", fileType)
	}
	k := koanf.New(keyDelimiter)
	if err := k.Load(rawbytes.Provider([]byte(fileData)), json.Parser()); err != nil {
		return "", err
	}
	out, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", err
	}
	return string(out), nil
}
