package charting

import (
	"net/url"

	"github.com/plotstream/plotstream/overlay"
)

type ServiceParams struct {
	Days    int
	Hours   int
	Minutes int
	Hovered int
	Refresh bool
}

func ParseServiceParams(values url.Values) (params *ServiceParams, err error) {
	params = &ServiceParams{
		Days:    0,
		Hours:   0,
		Minutes: 30,
		Hovered: overlay.None,
		Refresh: true,
	}
	if err = parseInt("days", values, &params.Days); err != nil {
		return
	}
	if err = parseInt("hours", values, &params.Hours); err != nil {
		return
	}
	if err = parseInt("minutes", values, &params.Minutes); err != nil {
		return
	}
	if err = parseInt("hovered", values, &params.Hovered); err != nil {
		return
	}
	if err = parseBool("refresh", values, &params.Refresh); err != nil {
		return
	}
	return
}
