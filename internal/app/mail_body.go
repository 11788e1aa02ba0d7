package app

import (
	"bytes"
	"html/template"
)

// reminderEmail feeds the HTML body template.
type reminderEmail struct {
	Title  string
	Intro  string
	Items  []reminderItem
	Footer string
}

type reminderItem struct {
	Title    string
	Subtitle string
}

// Inline-styled table layout mirroring the web app's design system. Mail
// clients ignore stylesheets, so every style stays on the element.
var reminderBodyTmpl = template.Must(template.New("reminder").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1"><title>{{.Title}}</title></head>
<body style="margin:0;padding:24px;background:#fafafa;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;color:#2d2d2d">
<table role="presentation" cellpadding="0" cellspacing="0" style="max-width:720px;margin:0 auto;background:#ffffff;border-radius:10px;overflow:hidden;border:1px solid #eee">
<tr><td style="padding:18px 20px;border-bottom:1px solid #f5f5f5"><div style="font-size:18px;font-weight:700;color:#2d2d2d">{{.Title}}</div></td></tr>
<tr><td style="padding:20px">
<div style="margin-bottom:12px;color:#6b6b6b">{{.Intro}}</div>
<table role="presentation" style="width:100%;border-collapse:collapse;margin-top:8px">
{{range .Items}}<tr style="border-bottom:1px solid #f0f0f0"><td style="padding:14px 0"><div style="font-weight:600;color:#2d2d2d;margin-bottom:4px">{{.Title}}</div><div style="color:#6b6b6b;font-size:13px;line-height:1.3">{{.Subtitle}}</div></td></tr>
{{end}}</table>
<div style="margin-top:18px;padding-top:12px;border-top:1px solid #f5f5f5;color:#6b6b6b;font-size:12px">{{.Footer}}</div>
</td></tr>
</table>
<div style="max-width:720px;margin:12px auto;color:#6b6b6b;font-size:12px">¿No esperabas este correo? Puedes ignorarlo.</div>
</body>
</html>`))

func renderReminderHTML(data reminderEmail) (string, error) {
	var buf bytes.Buffer
	if err := reminderBodyTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
