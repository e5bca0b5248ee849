package template_engine

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/tristendillon/umdgen/core/loader"
	"github.com/tristendillon/umdgen/core/logger"
)

// FragmentData is what the fragment templates are executed with.
type FragmentData struct {
	Module    string
	Strategy  string
	Condition string
	Loader    string
	Functions []string
}

func NewFragmentData(module string, s loader.Strategy, functions []string) FragmentData {
	return FragmentData{
		Module:    module,
		Strategy:  s.Name(),
		Condition: s.Condition(),
		Loader:    s.Loader(),
		Functions: functions,
	}
}

type TemplateEngine struct {
	fsys    fs.FS
	funcMap template.FuncMap
}

func getDefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"trim":  strings.TrimSpace,
		"join":  func(items []string, sep string) string { return strings.Join(items, sep) },
		"quote": loader.Quote,
	}
}

func NewTemplateEngine() *TemplateEngine {
	sub, err := fs.Sub(TemplateFS, "templates")
	if err != nil {
		// only fails for an invalid literal path
		panic(err)
	}
	return NewTemplateEngineFS(sub)
}

// NewTemplateEngineFS serves templates from fsys instead of the embedded set.
func NewTemplateEngineFS(fsys fs.FS) *TemplateEngine {
	return &TemplateEngine{
		fsys:    fsys,
		funcMap: getDefaultFuncMap(),
	}
}

func (te *TemplateEngine) AddFunc(name string, fn interface{}) {
	te.funcMap[name] = fn
}

func (te *TemplateEngine) Render(name string, w io.Writer, data interface{}) error {
	content, err := fs.ReadFile(te.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read template file %s: %w", name, err)
	}

	tmpl, err := template.New(path.Base(name)).Funcs(te.funcMap).Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return nil
}

func (te *TemplateEngine) RenderFile(name, outputPath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	defer outputFile.Close()

	if err := te.Render(name, outputFile, data); err != nil {
		return err
	}
	logger.Debug("Rendered %s to %s", name, outputPath)
	return outputFile.Close()
}

func (te *TemplateEngine) ListTemplates() ([]string, error) {
	var templates []string
	err := fs.WalkDir(te.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".tmpl") {
			templates = append(templates, p)
		}
		return nil
	})
	return templates, err
}
