package cli

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Meng-Best/task-planning-system-sub001/internal/worktime"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// renderWorkloadPDF generates a PDF workload report and saves it to the
// given path.
func renderWorkloadPDF(report workloadReport, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(14,
		text.NewCol(12, report.Title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	// Column headers
	m.AddRow(8,
		text.NewCol(2, "Code", props.Text{Style: fontstyle.Bold, Size: 10, Color: &pdfHeaderColor}),
		text.NewCol(5, "Name", props.Text{Style: fontstyle.Bold, Size: 10, Color: &pdfHeaderColor}),
		text.NewCol(1, "Tasks", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: &pdfHeaderColor}),
		text.NewCol(2, "Worked", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: &pdfHeaderColor}),
		text.NewCol(2, report.MetricLabel, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: &pdfHeaderColor}),
	)

	totalWorked := 0
	for _, row := range report.Rows {
		totalWorked += row.Worked
		m.AddRow(6,
			text.NewCol(2, row.Code, props.Text{Size: 9}),
			text.NewCol(5, row.Name, props.Text{Size: 9}),
			text.NewCol(1, fmt.Sprintf("%d", row.TaskCount), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, worktime.FormatMinutes(row.Worked), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, row.Metric, props.Text{Size: 9, Align: align.Right, Color: &pdfMutedColor}),
		)
	}

	// Grand total footer
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(8, "Total", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(4, worktime.FormatMinutes(totalWorked), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}
