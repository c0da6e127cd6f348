package cave

import (
	"fmt"
	"strconv"

	"aoc-ca/internal/core"
)

const (
	rateMin = 1
	rateMax = 500
)

// Parameters reports the cave setup and pour progress for the HUD.
func (c *Cave) Parameters() core.ParameterSnapshot {
	input := c.cfg.Input
	if input == "" {
		input = "sample"
	}
	b := c.Bounds()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Cave",
			Params: []core.Parameter{
				stringParam("input", "Input", input),
				boolParam("floor", "Floor", c.cfg.Floor),
				stringParam("source", "Source", c.Source().String()),
				stringParam("bounds", "Bounds", fmt.Sprintf("x %d..%d, y 0..%d", b.Min.X, b.Max.X-1, b.Max.Y-1)),
			},
		},
		{
			Name: "Pour",
			Params: []core.Parameter{
				intParam("rate", "Units per step", c.cfg.Rate),
				intParam("settled", "Settled", c.settled),
				intParam("voided", "Lost to void", c.voided),
				intParam("resizes", "Grid resizes", c.resizes),
				boolParam("done", "Done", c.done),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (c *Cave) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "rate",
		Label:  "Units per step",
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    rateMin,
		Max:    rateMax,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter updates an adjustable integer parameter.
func (c *Cave) SetIntParameter(key string, value int) bool {
	switch key {
	case "rate":
		c.cfg.Rate = min(max(value, rateMin), rateMax)
		return true
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
