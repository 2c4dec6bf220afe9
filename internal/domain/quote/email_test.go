package quote

import (
	"net/url"
	"strings"
	"testing"

	"freight_crm/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestRow(t *testing.T) {
	rq := require.New(t)

	row := Row(2, entities.Door{
		FrameType: "autoportante",
		WidthMM:   "3000",
		Actuators: []string{"pulsador", "control remoto"},
	})

	rq.Equal([]string{
		"03", "1", "AUTOPORTANTE", "-", "-", "-",
		"ANCHO: 3000 mm / ALTO: - mm", "-", "PULSADOR, CONTROL REMOTO", "-",
	}, row)

	rq.Equal("07", Row(0, entities.Door{Position: 7, Quantity: 4})[0])
	rq.Equal("4", Row(0, entities.Door{Position: 7, Quantity: 4})[1])
}

func TestDimensions(t *testing.T) {
	require.Equal(t, "ANCHO: - mm / ALTO: - mm", Dimensions(" ", ""))
	require.Equal(t, "ANCHO: 2500 mm / ALTO: 3200 mm", Dimensions("2500", "3200"))
}

func TestBuild_TextAndHTMLStayConsistent(t *testing.T) {
	rq := require.New(t)

	doors := []entities.Door{
		{FrameType: "estándar", CanvasType: "pvc 900g", Material: "acero", Finish: "galvanizado", WidthMM: "3000", HeightMM: "3500", MotorSide: "izquierdo", Quantity: 2},
		{Notes: "con visor <tipo A>"},
	}

	email, err := Build("OP-20260101-ABCDEF", "compras@proveedor.com", doors)
	rq.NoError(err)

	rq.Equal("Cotización puertas industriales - OP-20260101-ABCDEF", email.Subject)
	rq.Len(email.Rows, 2)

	for _, row := range email.Rows {
		rq.Len(row, len(Columns))
		rq.Contains(email.Text, strings.Join(row, " | "))
	}
	rq.Equal(len(doors), strings.Count(email.HTML, "<tr><td>"))
	rq.Contains(email.HTML, "<td>ESTÁNDAR</td>")
	rq.Contains(email.HTML, "CON VISOR &lt;TIPO A&gt;")
	rq.Contains(email.Text, "CON VISOR <TIPO A>")

	rq.True(strings.HasPrefix(email.Mailto, "mailto:compras@proveedor.com?subject="))
	u, err := url.Parse(email.Mailto)
	rq.NoError(err)
	rq.Equal(email.Text, u.Query().Get("body"))
	rq.Equal(email.Subject, u.Query().Get("subject"))
	rq.NotContains(email.Mailto, "+")
}

func TestBuild_MultiLineCellsKeepOneTextRow(t *testing.T) {
	rq := require.New(t)

	doors := []entities.Door{
		{Notes: "visor superior\nsin  burlete | lado B", Actuators: []string{"pulsador\r\n", "radio|control"}},
		{Notes: "\n\t"},
	}

	email, err := Build("OP-1", "", doors)
	rq.NoError(err)

	rq.Equal("VISOR SUPERIOR SIN BURLETE / LADO B", email.Rows[0][9])
	rq.Equal("PULSADOR, RADIO/CONTROL", email.Rows[0][8])
	rq.Equal("-", email.Rows[1][9])

	var tableLines int
	for _, line := range strings.Split(email.Text, "\n") {
		if strings.Contains(line, " | ") {
			tableLines++
			rq.Equal(len(Columns)-1, strings.Count(line, " | "), line)
		}
	}
	rq.Equal(len(doors)+1, tableLines)
	rq.Equal(len(doors), strings.Count(email.HTML, "<tr><td>"))
}

func TestBuild_Empty(t *testing.T) {
	rq := require.New(t)

	email, err := Build("", "", nil)
	rq.NoError(err)
	rq.Empty(email.Rows)
	rq.Contains(email.Subject, " - -")
	rq.True(strings.HasPrefix(email.Mailto, "mailto:?subject="))
}
