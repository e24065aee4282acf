package invoice

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice for {{.Label}}</title>
</head>
<body>
<h1>{{.User.Name}}</h1>
<p>Contact number: {{.User.ContactNumber}}</p>
<p>Email: {{.User.Email}}</p>
<p>Bill to: {{.User.ManagerName}}</p>

<h2>Invoice for {{.Label}}</h2>
<p>Date: {{.IssuedOn}}</p>

<table border="1" cellspacing="0" cellpadding="6">
<thead>
<tr><th>Status</th><th>Class Description</th><th>Day</th><th>Date</th><th>Hours</th><th>Wage</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr>
<td>{{.Status}}</td>
<td>{{.Class}} - {{.Grade}}</td>
<td>{{.Day}}</td>
<td>{{.DateLabel}}</td>
<td>{{.Hours}}</td>
<td>{{printf "%.2f" .Wage}}</td>
</tr>
{{end}}<tr>
<td colspan="4"><strong>TOTAL</strong></td>
<td><strong>{{.TotalHours}}</strong></td>
<td><strong>{{printf "%.2f" .TotalPay}}</strong></td>
</tr>
</tbody>
</table>

<h3>Bank Details:</h3>
<p>{{.User.Name}}</p>
<p>BSB: {{.User.BSB}}</p>
<p>Account No: {{.User.AccountNumber}}</p>
</body>
</html>
`))

// RenderHTML writes the on-page invoice. Rows and totals come straight from
// the aggregation output, matching the PDF renderer figure for figure.
func RenderHTML(w io.Writer, inv Invoice) error {
	return pageTemplate.Execute(w, inv)
}
