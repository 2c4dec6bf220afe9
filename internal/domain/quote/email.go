// Package quote renders the supplier quote request for a deal's industrial doors.
package quote

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"freight_crm/internal/domain/entities"
)

const missing = "-"

// Columns is the shared layout of the text and HTML bodies.
var Columns = []string{
	"ITEM", "CANT.", "MARCO", "LONA", "MATERIAL", "TERMINACIÓN",
	"MEDIDAS", "LADO MOTOR", "ACCIONAMIENTOS", "OBSERVACIONES",
}

// Email is a ready-to-send quote request. Text and HTML carry the same rows;
// Mailto opens a draft with the text body.
type Email struct {
	Subject string     `json:"subject"`
	Text    string     `json:"text"`
	HTML    string     `json:"html"`
	Mailto  string     `json:"mailto"`
	Rows    [][]string `json:"rows"`
}

var htmlBody = template.Must(template.New("quote").Parse(`<p>Estimados,</p>
<p>Solicitamos cotización para la operación <strong>{{.Reference}}</strong>:</p>
<table border="1" cellpadding="4" cellspacing="0" style="border-collapse:collapse;font-family:Arial,sans-serif;font-size:12px">
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
<p>Saludos cordiales.</p>
`))

// Build renders the quote request for doors under the deal reference.
// to may be empty; the draft then has no recipient.
func Build(reference, to string, doors []entities.Door) (Email, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		reference = missing
	}

	rows := make([][]string, 0, len(doors))
	for i, d := range doors {
		rows = append(rows, Row(i, d))
	}

	subject := "Cotización puertas industriales - " + reference

	var text strings.Builder
	text.WriteString("Estimados,\n\n")
	fmt.Fprintf(&text, "Solicitamos cotización para la operación %s:\n\n", reference)
	text.WriteString(strings.Join(Columns, " | "))
	text.WriteString("\n")
	for _, r := range rows {
		text.WriteString(strings.Join(r, " | "))
		text.WriteString("\n")
	}
	text.WriteString("\nSaludos cordiales.\n")

	var html bytes.Buffer
	err := htmlBody.Execute(&html, struct {
		Reference string
		Columns   []string
		Rows      [][]string
	}{Reference: reference, Columns: Columns, Rows: rows})
	if err != nil {
		return Email{}, fmt.Errorf("render html: %w", err)
	}

	return Email{
		Subject: subject,
		Text:    text.String(),
		HTML:    html.String(),
		Mailto:  mailto(to, subject, text.String()),
		Rows:    rows,
	}, nil
}

// Row derives the cells of one door. index is the door's 0-based position in
// the list and numbers it when the door has no explicit position.
func Row(index int, d entities.Door) []string {
	n := d.Position
	if n <= 0 {
		n = index + 1
	}
	qty := d.Quantity
	if qty <= 0 {
		qty = 1
	}

	return []string{
		fmt.Sprintf("%02d", n),
		fmt.Sprintf("%d", qty),
		upper(d.FrameType),
		upper(d.CanvasType),
		upper(d.Material),
		upper(d.Finish),
		Dimensions(d.WidthMM, d.HeightMM),
		upper(d.MotorSide),
		upper(joinList(d.Actuators)),
		upper(d.Notes),
	}
}

// Dimensions renders "ANCHO: {w} mm / ALTO: {h} mm" with "-" for blanks.
func Dimensions(width, height string) string {
	return fmt.Sprintf("ANCHO: %s mm / ALTO: %s mm", orMissing(width), orMissing(height))
}

func joinList(items []string) string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return strings.Join(out, ", ")
}

func upper(s string) string {
	return strings.ToUpper(orMissing(s))
}

// orMissing also flattens a cell to one line without the text column
// separator, so text and HTML keep the same rows.
func orMissing(s string) string {
	s = strings.Join(strings.Fields(strings.ReplaceAll(s, "|", "/")), " ")
	if s == "" {
		return missing
	}
	return s
}

func mailto(to, subject, body string) string {
	q := "subject=" + escape(subject) + "&body=" + escape(body)
	return "mailto:" + url.PathEscape(strings.TrimSpace(to)) + "?" + q
}

// escape is query escaping with %20 for spaces, which mail clients expect.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
