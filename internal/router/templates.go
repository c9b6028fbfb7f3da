package router

import (
	"html/template"
	"path/filepath"

	"github.com/gin-contrib/multitemplate"
)

// LoadTemplates assembles each view on top of the shared layout so handler
// names like "question/list.html" resolve to a full page.
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+1)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	views := []string{
		"auth/login.html",
		"auth/register.html",
		"question/list.html",
		"question/detail.html",
		"question/ask.html",
		"question/ask_question.html",
		"question/answer.html",
		"user/profile.html",
		"user/settings.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFilesFuncs(view, funcMap, assemble(templatesDir+"/views/"+view)...)
	}

	return r
}
