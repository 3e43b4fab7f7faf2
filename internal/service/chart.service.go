package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"stockhealth/internal/domain"

	"github.com/montanaflynn/stats"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartService turns a daily bar series into base64 PNGs. Rendering is pure
// computation over the input slice, so the handlers can share one instance.
type ChartService interface {
	RenderPriceChart(symbol string, period domain.Period, bars []domain.AssetBar) (string, error)
	RenderVolumeChart(symbol string, period domain.Period, bars []domain.AssetBar) (string, error)
}

func NewChartService() ChartService {
	return chartServiceHandler{}
}

type chartServiceHandler struct{}

var (
	colorBackground = drawing.ColorFromHex("0b0e14")
	colorClose      = drawing.ColorFromHex("00ff88")
	colorMA50       = drawing.ColorFromHex("ffaa00")
	colorMA200      = drawing.ColorFromHex("ff0088")
	colorVolume     = drawing.ColorFromHex("00aaff")
)

func (h chartServiceHandler) RenderPriceChart(symbol string, period domain.Period, bars []domain.AssetBar) (string, error) {
	if len(bars) < 2 {
		return "", domain.RenderError{Err: fmt.Errorf("need at least 2 bars for %s, got %d", symbol, len(bars))}
	}

	dates := make([]time.Time, len(bars))
	closes := make([]float64, len(bars))
	for i, b := range bars {
		dates[i] = b.Date
		closes[i] = b.Close.InexactFloat64()
	}

	series := []chart.Series{
		chart.TimeSeries{
			Name: "Close Price",
			Style: chart.Style{
				StrokeColor: colorClose,
				StrokeWidth: 2,
				FillColor:   colorClose.WithAlpha(60),
			},
			XValues: dates,
			YValues: closes,
		},
	}

	// MA overlays only once the window fits the series
	if ma := MovingAverage(closes, 50); ma != nil {
		series = append(series, chart.TimeSeries{
			Name: "50-Day MA",
			Style: chart.Style{
				StrokeColor: colorMA50,
				StrokeWidth: 1.5,
			},
			XValues: dates[49:],
			YValues: ma,
		})
	}
	if ma := MovingAverage(closes, 200); ma != nil {
		series = append(series, chart.TimeSeries{
			Name: "200-Day MA",
			Style: chart.Style{
				StrokeColor: colorMA200,
				StrokeWidth: 1.5,
			},
			XValues: dates[199:],
			YValues: ma,
		})
	}

	graph := chart.Chart{
		Title:      fmt.Sprintf("%s - Price History (%s)", symbol, period),
		TitleStyle: chart.Style{FontColor: drawing.ColorWhite},
		Width:      1200,
		Height:     600,
		Background: chart.Style{FillColor: colorBackground},
		Canvas:     chart.Style{FillColor: colorBackground},
		XAxis: chart.XAxis{
			Style: chart.Style{FontColor: drawing.ColorWhite},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: drawing.ColorWhite},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return renderToBase64(graph)
}

func (h chartServiceHandler) RenderVolumeChart(symbol string, period domain.Period, bars []domain.AssetBar) (string, error) {
	if len(bars) < 2 {
		return "", domain.RenderError{Err: fmt.Errorf("need at least 2 bars for %s, got %d", symbol, len(bars))}
	}

	dates := make([]time.Time, len(bars))
	volumes := make([]float64, len(bars))
	for i, b := range bars {
		dates[i] = b.Date
		volumes[i] = float64(b.Volume)
	}

	graph := chart.Chart{
		Title:      fmt.Sprintf("%s - Volume History (%s)", symbol, period),
		TitleStyle: chart.Style{FontColor: drawing.ColorWhite},
		Width:      1200,
		Height:     400,
		Background: chart.Style{FillColor: colorBackground},
		Canvas:     chart.Style{FillColor: colorBackground},
		XAxis: chart.XAxis{
			Style: chart.Style{FontColor: drawing.ColorWhite},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: drawing.ColorWhite},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Volume",
				Style: chart.Style{
					StrokeColor: colorVolume,
					StrokeWidth: 1,
					FillColor:   colorVolume.WithAlpha(150),
				},
				XValues: dates,
				YValues: volumes,
			},
		},
	}

	return renderToBase64(graph)
}

func renderToBase64(graph chart.Chart) (string, error) {
	buf := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buf); err != nil {
		return "", domain.RenderError{Err: err}
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// MovingAverage returns the simple rolling mean over the given window, one
// value per input index >= window-1. Nil when the series is shorter than the
// window.
func MovingAverage(values []float64, window int) []float64 {
	if len(values) < window {
		return nil
	}
	out := make([]float64, 0, len(values)-window+1)
	for i := window; i <= len(values); i++ {
		mean, err := stats.Mean(values[i-window : i])
		if err != nil {
			return nil
		}
		out = append(out, mean)
	}
	return out
}
