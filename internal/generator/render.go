package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"text/template"
	"unicode"
)

// Renderer handles template parsing and rendering with caching
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex
}

// NewRenderer creates a renderer with built-in helper functions
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderString renders a template from a string.
// The name is used for caching and error messages.
func (r *Renderer) RenderString(name, text string, data any) ([]byte, error) {
	return r.render("string:"+name, func() (string, error) { return text, nil }, data)
}

// RenderFS renders a template read from a filesystem such as an embed.FS.
func (r *Renderer) RenderFS(fsys fs.FS, path string, data any) ([]byte, error) {
	return r.render("fs:"+path, func() (string, error) {
		b, err := fs.ReadFile(fsys, path)
		if err != nil {
			return "", fmt.Errorf("failed to read template from fs '%s': %w", path, err)
		}
		return string(b), nil
	}, data)
}

// RenderFile renders a template from a file on disk. The declarations
// artifact uses this when a project overrides the built-in template.
func (r *Renderer) RenderFile(path string, data any) ([]byte, error) {
	return r.render("file:"+path, func() (string, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read template file '%s': %w", path, err)
		}
		return string(b), nil
	}, data)
}

// ClearCache clears the template cache
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

func (r *Renderer) render(key string, load func() (string, error), data any) ([]byte, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[key]
	r.mu.RUnlock()

	if !ok {
		text, err := load()
		if err != nil {
			return nil, err
		}
		name := key[strings.IndexByte(key, ':')+1:]
		tmpl, err = template.New(name).Funcs(r.funcMap).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
		}
		r.mu.Lock()
		r.cache[key] = tmpl
		r.mu.Unlock()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"pascalCase": PascalCase, // stamped_pose → StampedPose
		"snakeCase":  SnakeCase,  // StampedPose → stamped_pose
		"goIdent":    GoIdent,    // 2d_vector → X2DVector
		"quote":      Quote,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"trim":       strings.TrimSpace,
		"join":       strings.Join,
		"hasPrefix":  strings.HasPrefix,
		"replace":    strings.ReplaceAll,
		"dict":       Dict,
		"default":    Default,
	}
}

// PascalCase converts snake_case or camelCase to PascalCase.
// Names that are already PascalCase, such as schema message names, are
// returned unchanged.
func PascalCase(s string) string {
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "_") {
		return upperFirst(s)
	}

	var b strings.Builder
	for part := range strings.SplitSeq(s, "_") {
		b.WriteString(upperFirst(part))
	}
	return b.String()
}

// SnakeCase converts PascalCase or camelCase to snake_case.
// Examples: StampedPose → stamped_pose, HTTPServer → http_server
func SnakeCase(s string) string {
	if strings.Contains(s, "_") {
		return strings.ToLower(s)
	}

	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// GoIdent turns a schema name into the Go identifier protoc-gen-go gives
// it: an underscore before a lowercase letter is dropped and that letter
// raised, and a lowercase letter after a digit is raised too, so Vector3d
// becomes Vector3D. Names that would not start with a letter are prefixed
// with X.
func GoIdent(s string) string {
	id := goCamelCase(s)
	if id == "" {
		return "X"
	}
	if r := []rune(id)[0]; !unicode.IsLetter(r) {
		return "X" + id
	}
	return id
}

func goCamelCase(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.' && i+1 < len(s) && isLowerASCII(s[i+1]):
		case c == '.':
			b = append(b, '_')
		case c == '_' && (i == 0 || s[i-1] == '.'):
			b = append(b, 'X')
		case c == '_' && i+1 < len(s) && isLowerASCII(s[i+1]):
		case '0' <= c && c <= '9':
			b = append(b, c)
		default:
			if isLowerASCII(c) {
				c -= 'a' - 'A'
			}
			b = append(b, c)
			for ; i+1 < len(s) && isLowerASCII(s[i+1]); i++ {
				b = append(b, s[i+1])
			}
		}
	}
	return string(b)
}

func isLowerASCII(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func upperFirst(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Quote wraps a string in double quotes using Go escaping.
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}

// Dict creates a map from alternating key-value pairs
// Usage in template: {{ template "partial" (dict "key1" val1 "key2" val2) }}
func Dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict requires an even number of arguments")
	}

	result := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings, got %T at position %d", values[i], i)
		}
		result[key] = values[i+1]
	}
	return result, nil
}

// Default returns defaultVal if val is nil or an empty string.
func Default(defaultVal, val any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}
