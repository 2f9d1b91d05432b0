package gen

import "text/template"

// headerData carries the names shared by both artifacts.
type headerData struct {
	ToolName            string
	Identifier          string
	Function            string
	Signature           string
	GuardPrefix         string
	RequiredIncludes    []string
	DeclarationIncludes []string
	AppendFunc          string
	ContextParam        string
}

// implementationData extends headerData with the assembled template body.
type implementationData struct {
	headerData

	Includes  []string
	Format    string
	Arguments string
}

// Template for the implementation file

var implementationTemplate = template.Must(template.New("implementation").Parse(`// WARNING: this file was generated automatically by {{.ToolName}}

{{range .RequiredIncludes}}#include <{{.}}>
{{end}}{{range .Includes}}#include <{{.}}>
{{end}}
static const gchar *{{.Function}}_format = "{{.Format}}";
extern void {{.Function}}({{.Signature}});

void
{{.Function}}({{.Signature}})
{
{{- if .Arguments}}
    gchar *rv = g_strdup_printf({{.Function}}_format,
{{.Arguments}});
{{- else}}
    gchar *rv = g_strdup({{.Function}}_format);
{{- end}}
    {{.AppendFunc}}({{.ContextParam}}, rv);
    g_free(rv);
}
`))

// Template for the declaration (header) file

var declarationTemplate = template.Must(template.New("declaration").Parse(`// WARNING: this file was generated automatically by {{.ToolName}}

#ifndef __{{.Identifier}}_{{.GuardPrefix}}
#define __{{.Identifier}}_{{.GuardPrefix}}

{{range .DeclarationIncludes}}#include <{{.}}>
{{end}}
extern void {{.Function}}({{.Signature}});

#endif
`))
