// Package preview renders the live on-screen invoice page. Styling goes
// through CSS custom properties fed from theme tokens; the page is
// re-rendered from stored state on every request.
package preview

import (
	"bytes"
	"html/template"

	"github.com/inkvoice/inkvoice/internal/invoice/render"
)

const previewTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Number}}</title>
  <style>
    :root {
      --primary: {{.Theme.Primary}};
      --header-bg: {{.Theme.HeaderBackground}};
      --border: {{.Theme.Border}};
      --text: {{.Theme.Text}};
      --muted: {{.Theme.MutedText}};
      --bg: {{.Theme.Background}};
      --font: {{css .Theme.FontFamily}};
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: var(--font);
      color: var(--text);
      background: var(--bg);
      -webkit-font-smoothing: antialiased;
    }
    .invoice-card {
      position: relative;
      background: var(--bg);
      max-width: 760px;
      margin: 0 auto;
      padding: 60px;
      box-shadow: 0 2px 5px rgba(0,0,0,0.04);
      border-radius: 4px;
      overflow: hidden;
    }
    .watermark {
      position: absolute;
      top: 50%;
      left: 50%;
      transform: translate(-50%, -50%);
      max-width: 70%;
      z-index: 0;
      pointer-events: none;
    }
    .content { position: relative; z-index: 1; }
    .header {
      display: flex;
      justify-content: space-between;
      background: var(--header-bg);
      margin: -60px -60px 40px;
      padding: 40px 60px;
    }
    .header-left h1 {
      margin: 0;
      font-size: 24px;
      font-weight: 700;
      color: var(--primary);
    }
    .header-right {
      text-align: right;
      font-weight: 600;
      font-size: 16px;
    }
    .label {
      font-size: 11px;
      text-transform: uppercase;
      color: var(--muted);
      margin-bottom: 6px;
      font-weight: 600;
      letter-spacing: 0.3px;
    }
    .value { font-size: 14px; line-height: 1.5; }
    .meta-grid {
      display: flex;
      justify-content: space-between;
      margin-bottom: 40px;
    }
    table { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
    th {
      text-align: left;
      text-transform: uppercase;
      font-size: 11px;
      color: var(--muted);
      border-bottom: 1px solid var(--border);
      padding: 10px 0;
      font-weight: 600;
      letter-spacing: 0.3px;
    }
    td {
      padding: 14px 0;
      border-bottom: 1px solid var(--border);
      font-size: 14px;
      vertical-align: top;
    }
    .td-right { text-align: right; }
    .item-sub { font-size: 12px; color: var(--muted); }
    .totals { display: flex; flex-direction: column; align-items: flex-end; }
    .total-row {
      display: flex;
      justify-content: space-between;
      width: 260px;
      padding: 6px 0;
      font-size: 14px;
    }
    .total-label { color: var(--muted); }
    .total-final {
      border-top: 1px solid var(--border);
      margin-top: 10px;
      padding-top: 10px;
      font-weight: 700;
      font-size: 16px;
      color: var(--primary);
    }
    .footer {
      margin-top: 50px;
      font-size: 12px;
      color: var(--muted);
      border-top: 1px solid var(--border);
      padding-top: 20px;
      white-space: pre-line;
    }
  </style>
</head>
<body>
  <div class="invoice-card" id="invoice-capture-target">
    {{if .Watermark}}<img class="watermark" src="{{dataurl .Watermark}}" style="opacity: {{printf "%.2f" .WatermarkOpacity}};" alt="">{{end}}
    <div class="content">
      <div class="header">
        <div class="header-left">
          <h1>Invoice</h1>
          <div class="label" style="margin-top: 12px;">Invoice number</div>
          <div class="value">{{.Number}}</div>
        </div>
        <div class="header-right">
          {{if .LogoDataURL}}<img src="{{dataurl .LogoDataURL}}" style="max-height: 48px;" alt="{{.CompanyName}}"><br>{{end}}
          {{.CompanyName}}
        </div>
      </div>

      <div class="meta-grid">
        <div>
          <div class="label">Bill to</div>
          <div class="value"><strong>{{.CustomerName}}</strong></div>
        </div>
        <div style="text-align: right;">
          <div class="label">Date issued</div>
          <div class="value">{{.Date}}</div>
          {{if .DueDate}}
          <div class="label" style="margin-top: 16px;">Date due</div>
          <div class="value">{{.DueDate}}</div>
          {{end}}
        </div>
      </div>

      <table>
        <thead>
          <tr>
            <th style="width: 40%;">Description</th>
            <th class="td-right">Qty</th>
            <th>Unit</th>
            <th class="td-right">Rate</th>
            <th class="td-right">Disc</th>
            <th class="td-right">Amount</th>
          </tr>
        </thead>
        <tbody>
          {{if .HasItems}}
          {{range .Rows}}
          <tr>
            <td>
              {{.Description}}
              {{if .DateRange}}<div class="item-sub">{{.DateRange}}</div>{{end}}
            </td>
            <td class="td-right">{{.Quantity}}</td>
            <td>{{.Unit}}</td>
            <td class="td-right">{{.Rate}}</td>
            <td class="td-right">{{.Discount}}</td>
            <td class="td-right" style="font-weight: 500;">{{.Amount}}</td>
          </tr>
          {{end}}
          {{else}}
          <tr><td colspan="6" style="text-align: center; color: var(--muted);">No items listed</td></tr>
          {{end}}
        </tbody>
      </table>

      <div class="totals">
        <div class="total-row">
          <span class="total-label">Subtotal</span>
          <span>{{.SubTotal}}</span>
        </div>
        {{if .HasDiscount}}
        <div class="total-row">
          <span class="total-label">{{.DiscountLabel}}</span>
          <span>-{{.DiscountAmount}}</span>
        </div>
        {{end}}
        <div class="total-row total-final">
          <span>Total</span>
          <span>{{.Total}}</span>
        </div>
      </div>

      {{if or .Notes .Terms}}
      <div class="footer">
        {{if .Notes}}{{.Notes}}{{end}}
        {{if .Terms}}{{if .Notes}}<br><br>{{end}}{{.Terms}}{{end}}
      </div>
      {{end}}
    </div>
  </div>
</body>
</html>
`

type Renderer struct {
	tpl *template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		// Font stacks carry quotes, which the contextual CSS escaper would
		// otherwise reject. Tokens come from the closed theme enumeration,
		// never from user input.
		"css":     func(s string) template.CSS { return template.CSS(s) },
		"dataurl": render.ImageURL,
	}
	return &Renderer{
		tpl: template.Must(template.New("preview").Funcs(funcs).Parse(previewTemplate)),
	}
}

// Render produces the preview page for one resolved invoice view.
func (r *Renderer) Render(view render.View) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
