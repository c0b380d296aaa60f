// Package docexport renders a self-contained, inline-styled HTML document
// for word processors. The layout deliberately duplicates the preview
// surface instead of sharing markup: the consuming application cannot run
// the app's styling engine, so every style must be carried inline. Keeping
// the two implementations independent is why cross-surface consistency is
// tested explicitly.
package docexport

import (
	"bytes"
	"html/template"

	"github.com/inkvoice/inkvoice/internal/invoice/render"
)

// MIMEType makes the consuming application open the file as a document
// rather than a web page.
const MIMEType = "application/msword"

// Extension is the download file extension.
const Extension = ".doc"

const docTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>Invoice {{.Number}}</title>
</head>
<body style="margin: 0; padding: 24pt; font-family: {{css .Theme.FontFamily}}; color: {{css .Theme.Text}}; background: {{css .Theme.Background}};">
<div style="position: relative;">
{{if .Watermark}}<div style="text-align: center;"><img src="{{dataurl .Watermark}}" style="opacity: {{printf "%.2f" .WatermarkOpacity}}; max-width: 60%;" alt=""></div>{{end}}

<table style="width: 100%; background: {{css .Theme.HeaderBackground}}; padding: 12pt;" cellpadding="12">
<tr>
<td style="font-family: {{css .Theme.FontFamily}};">
  <div style="font-size: 20pt; font-weight: bold; color: {{css .Theme.Primary}};">Invoice</div>
  <div style="font-size: 8pt; text-transform: uppercase; color: {{css .Theme.MutedText}}; margin-top: 8pt;">Invoice number</div>
  <div style="font-size: 11pt;">{{.Number}}</div>
</td>
<td style="text-align: right; font-weight: bold; font-size: 12pt; font-family: {{css .Theme.FontFamily}};">
  {{if .LogoDataURL}}<img src="{{dataurl .LogoDataURL}}" style="max-height: 36pt;" alt="{{.CompanyName}}"><br>{{end}}
  {{.CompanyName}}
</td>
</tr>
</table>

<table style="width: 100%; margin-top: 18pt;" cellpadding="0">
<tr>
<td style="font-family: {{css .Theme.FontFamily}};">
  <div style="font-size: 8pt; text-transform: uppercase; color: {{css .Theme.MutedText}};">Bill to</div>
  <div style="font-size: 11pt; font-weight: bold;">{{.CustomerName}}</div>
</td>
<td style="text-align: right; font-family: {{css .Theme.FontFamily}};">
  <div style="font-size: 8pt; text-transform: uppercase; color: {{css .Theme.MutedText}};">Date issued</div>
  <div style="font-size: 11pt;">{{.Date}}</div>
  {{if .DueDate}}
  <div style="font-size: 8pt; text-transform: uppercase; color: {{css .Theme.MutedText}}; margin-top: 8pt;">Date due</div>
  <div style="font-size: 11pt;">{{.DueDate}}</div>
  {{end}}
</td>
</tr>
</table>

<table style="width: 100%; border-collapse: collapse; margin-top: 18pt;" cellpadding="6">
<tr>
  <th style="text-align: left; font-size: 8pt; text-transform: uppercase; color: {{css .Theme.MutedText}}; border-bottom: 1pt solid {{css .Theme.Border}};">Description</th>
  <th style="text-align: right; font-size: 8pt; text-transform: uppercase; color: {{css .Theme.MutedText}}; border-bottom: 1pt solid {{css .Theme.Border}};">Qty</th>
  <th style="text-align: left; font-size: 8pt; text-transform: uppercase; color: {{css .Theme.MutedText}}; border-bottom: 1pt solid {{css .Theme.Border}};">Unit</th>
  <th style="text-align: right; font-size: 8pt; text-transform: uppercase; color: {{css .Theme.MutedText}}; border-bottom: 1pt solid {{css .Theme.Border}};">Rate</th>
  <th style="text-align: right; font-size: 8pt; text-transform: uppercase; color: {{css .Theme.MutedText}}; border-bottom: 1pt solid {{css .Theme.Border}};">Disc</th>
  <th style="text-align: right; font-size: 8pt; text-transform: uppercase; color: {{css .Theme.MutedText}}; border-bottom: 1pt solid {{css .Theme.Border}};">Amount</th>
</tr>
{{if .HasItems}}
{{range .Rows}}
<tr>
  <td style="font-size: 10pt; border-bottom: 1pt solid {{css $.Theme.Border}};">
    {{.Description}}
    {{if .DateRange}}<br><span style="font-size: 8pt; color: {{css $.Theme.MutedText}};">{{.DateRange}}</span>{{end}}
  </td>
  <td style="font-size: 10pt; text-align: right; border-bottom: 1pt solid {{css $.Theme.Border}};">{{.Quantity}}</td>
  <td style="font-size: 10pt; border-bottom: 1pt solid {{css $.Theme.Border}};">{{.Unit}}</td>
  <td style="font-size: 10pt; text-align: right; border-bottom: 1pt solid {{css $.Theme.Border}};">{{.Rate}}</td>
  <td style="font-size: 10pt; text-align: right; border-bottom: 1pt solid {{css $.Theme.Border}};">{{.Discount}}</td>
  <td style="font-size: 10pt; text-align: right; font-weight: bold; border-bottom: 1pt solid {{css $.Theme.Border}};">{{.Amount}}</td>
</tr>
{{end}}
{{else}}
<tr><td colspan="6" style="font-size: 10pt; text-align: center; color: {{css .Theme.MutedText}};">No items listed</td></tr>
{{end}}
</table>

<table style="margin-top: 12pt; margin-left: auto; width: 40%;" cellpadding="4">
<tr>
  <td style="font-size: 10pt; color: {{css .Theme.MutedText}};">Subtotal</td>
  <td style="font-size: 10pt; text-align: right;">{{.SubTotal}}</td>
</tr>
{{if .HasDiscount}}
<tr>
  <td style="font-size: 10pt; color: {{css .Theme.MutedText}};">{{.DiscountLabel}}</td>
  <td style="font-size: 10pt; text-align: right;">-{{.DiscountAmount}}</td>
</tr>
{{end}}
<tr>
  <td style="font-size: 12pt; font-weight: bold; color: {{css .Theme.Primary}}; border-top: 1pt solid {{css .Theme.Border}};">Total</td>
  <td style="font-size: 12pt; font-weight: bold; text-align: right; border-top: 1pt solid {{css .Theme.Border}};">{{.Total}}</td>
</tr>
</table>

{{if or .Notes .Terms}}
<div style="margin-top: 24pt; padding-top: 12pt; border-top: 1pt solid {{css .Theme.Border}}; font-size: 9pt; color: {{css .Theme.MutedText}};">
  {{if .Notes}}{{.Notes}}{{end}}
  {{if .Terms}}{{if .Notes}}<br><br>{{end}}{{.Terms}}{{end}}
</div>
{{end}}

</div>
</body>
</html>
`

type Renderer struct {
	tpl *template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"css":     func(s string) template.CSS { return template.CSS(s) },
		"dataurl": render.ImageURL,
	}
	return &Renderer{
		tpl: template.Must(template.New("doc").Funcs(funcs).Parse(docTemplate)),
	}
}

// Render produces the standalone document body.
func (r *Renderer) Render(view render.View) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
