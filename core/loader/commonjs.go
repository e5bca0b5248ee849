package loader

import "strings"

const (
	CommonJSName = "commonjs"

	// suffix of the config key holding member names projected off each require
	moduleSuffix = "mod"

	isObjectFunc = "isObject"
)

// CommonJS registers the module on `exports` when loaded by a CommonJS
// runtime. Only one property, named after the module, is added to exports.
type CommonJS struct {
	config        Config
	dependsFile   []string
	dependsModule []string
}

func NewCommonJS(config Config) *CommonJS {
	cjs := &CommonJS{
		config:        config,
		dependsFile:   config.DependsProperty(CommonJSName),
		dependsModule: config.DependsProperty(CommonJSName + moduleSuffix),
	}
	config.NeedFunction(isObjectFunc)
	return cjs
}

func (c *CommonJS) Name() string {
	return CommonJSName
}

func (c *CommonJS) Condition() string {
	return "isObject(exports)"
}

// Loader returns the registration statement, for example
//
//	exports[name] = factory(require("one").One, require("two"));
func (c *CommonJS) Loader() string {
	var code strings.Builder
	code.WriteString("exports[name] = factory(")

	for i, dep := range c.dependsFile {
		if i > 0 {
			code.WriteString(", ")
		}
		code.WriteString("require(")
		code.WriteString(Quote(dep))
		code.WriteString(")")

		if member := c.member(i); member != "" {
			code.WriteString(".")
			code.WriteString(member)
		}
	}

	code.WriteString(");")
	return code.String()
}

func (c *CommonJS) member(i int) string {
	if i >= len(c.dependsModule) {
		return ""
	}
	return c.dependsModule[i]
}
