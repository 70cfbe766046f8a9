package docx

import "strings"

// CodeLanguage is the code block language enum of the document API.
type CodeLanguage int

const (
	LanguagePlainText CodeLanguage = iota + 1
	LanguageABAP
	LanguageAda
	LanguageApache
	LanguageApex
	LanguageAssembly
	LanguageBash
	LanguageCSharp
	LanguageCPlusPlus
	LanguageC
	LanguageCOBOL
	LanguageCSS
	LanguageCoffeeScript
	LanguageD
	LanguageDart
	LanguageDelphi
	LanguageDjango
	LanguageDockerfile
	LanguageErlang
	LanguageFortran
	LanguageFoxPro
	LanguageGo
	LanguageGroovy
	LanguageHTML
	LanguageHTMLBars
	LanguageHTTP
	LanguageHaskell
	LanguageJSON
	LanguageJava
	LanguageJavaScript
	LanguageJulia
	LanguageKotlin
	LanguageLaTeX
	LanguageLisp
	LanguageLogo
	LanguageLua
	LanguageMATLAB
	LanguageMakefile
	LanguageMarkdown
	LanguageNginx
	LanguageObjectiveC
	LanguageOpenEdgeABL
	LanguagePHP
	LanguagePerl
	LanguagePostScript
	LanguagePowerShell
	LanguageProlog
	LanguageProtoBuf
	LanguagePython
	LanguageR
	LanguageRPG
	LanguageRuby
	LanguageRust
	LanguageSAS
	LanguageSCSS
	LanguageSQL
	LanguageScala
	LanguageScheme
	LanguageScratch
	LanguageShell
	LanguageSwift
	LanguageThrift
	LanguageTypeScript
	LanguageVBScript
	LanguageVisualBasic
	LanguageXML
	LanguageYAML
	LanguageCMake
	LanguageDiff
	LanguageGherkin
	LanguageGraphQL
	LanguageOpenGLShadingLanguage
	LanguageProperties
	LanguageSolidity
	LanguageTOML
)

// languageEnumNames are the API enum names, indexed from LanguagePlainText.
var languageEnumNames = []string{
	"PlainText", "ABAP", "Ada", "Apache", "Apex", "AssemblyLanguage", "Bash",
	"CSharp", "CPlusPlus", "C", "COBOL", "CSS", "CoffeeScript", "D", "Dart",
	"Delphi", "Django", "Dockerfile", "Erlang", "Fortran", "FoxPro", "Go",
	"Groovy", "HTML", "HTMLBars", "HTTP", "Haskell", "JSON", "Java",
	"JavaScript", "Julia", "Kotlin", "LateX", "Lisp", "Logo", "Lua", "MATLAB",
	"Makefile", "Markdown", "Nginx", "ObjectiveC", "OpenEdgeABL", "PHP", "Perl",
	"PostScript", "PowerShell", "Prolog", "ProtoBuf", "Python", "R", "RPG",
	"Ruby", "Rust", "SAS", "SCSS", "SQL", "Scala", "Scheme", "Scratch", "Shell",
	"Swift", "Thrift", "TypeScript", "VBScript", "VisualBasic", "XML", "YAML",
	"CMake", "Diff", "Gherkin", "GraphQL", "OpenGLShadingLanguage", "Properties",
	"Solidity", "TOML",
}

var languageShortNames = map[CodeLanguage]string{
	LanguagePlainText:    "text",
	LanguageAssembly:     "assembly",
	LanguageCPlusPlus:    "cpp",
	LanguageCoffeeScript: "coffee",
	LanguageDockerfile:   "docker",
	LanguageFoxPro:       "foxpro",
	LanguageTypeScript:   "ts",
	LanguageJavaScript:   "js",
	LanguageRust:         "rs",
	LanguagePython:       "py",
	LanguageRuby:         "rb",
	LanguageMarkdown:     "md",
}

// String returns the API enum name, or an empty string for unknown values.
func (l CodeLanguage) String() string {
	idx := int(l) - int(LanguagePlainText)
	if idx < 0 || idx >= len(languageEnumNames) {
		return ""
	}
	return languageEnumNames[idx]
}

// Name returns the fence tag used for the language in Markdown.
func (l CodeLanguage) Name() string {
	if short, ok := languageShortNames[l]; ok {
		return short
	}
	return strings.ToLower(l.String())
}
