// Package rtrview renders a router's route table and recognition results as HTML.
package rtrview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/routerec/core/rtr"
)

// Probe is the recognition outcome for one path, as shown in the match report.
type Probe struct {
	Path    string
	Matched bool
	Pattern string
	Handler string
	Params  rtr.Params
}

// Probes recognizes each path against router.
func Probes[T any](router *rtr.Router[T], paths ...string) []Probe {
	probes := make([]Probe, 0, len(paths))

	for _, path := range paths {
		probe := Probe{Path: path}

		if m, ok := router.Recognize(path); ok {
			probe.Matched = true
			probe.Params = m.Params

			if p, ok := router.Pattern(m.Route); ok {
				probe.Pattern = p.String()
			}
			if h, ok := router.Handler(m.Route); ok {
				probe.Handler = handlerRef(h)
			}
		}

		probes = append(probes, probe)
	}

	return probes
}

// Page renders a full HTML document with the route table
// followed by the match report for probes, if any.
func Page(title string, routes []rtr.RouteList, probes []Probe) string {
	b := element.NewBuilder()

	element.RenderComponents(b, pageLayout{
		Title: title,
		Body: []element.Component{
			routeTable{Routes: routes},
			matchReport{Probes: probes},
		},
	})

	return b.String()
}

// pageLayout is the outer page structure
type pageLayout struct {
	Title string
	Body  []element.Component
}

func (p pageLayout) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(p.Title),
			b.Style().T(`
				body { font-family: monospace; max-width: 960px; margin: 0 auto; padding: 20px; }
				table { border-collapse: collapse; width: 100%; margin: 10px 0; }
				th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
				.miss { color: #721c24; }
			`),
		),
		b.Body().R(
			b.H1().T(p.Title),
			element.RenderComponents(b, p.Body...),
		),
	)
	return nil
}

type routeTable struct {
	Routes []rtr.RouteList
}

func (rt routeTable) Render(b *element.Builder) any {
	b.H3().T("Routes")

	if len(rt.Routes) == 0 {
		b.P().T("No routes registered.")
		return nil
	}

	b.Table().R(
		b.Tr().R(
			b.Th().T("ID"),
			b.Th().T("Pattern"),
			b.Th().T("Handler"),
		),
		func() any {
			for _, r := range rt.Routes {
				b.Tr().R(
					b.Td().T(strconv.Itoa(int(r.Route))),
					b.Td().T(r.Pattern),
					b.Td().T(r.HandlerRef),
				)
			}
			return nil
		}(),
	)
	return nil
}

type matchReport struct {
	Probes []Probe
}

func (mr matchReport) Render(b *element.Builder) any {
	if len(mr.Probes) == 0 {
		return nil
	}

	b.H3().T("Matches")
	b.Table().R(
		b.Tr().R(
			b.Th().T("Path"),
			b.Th().T("Pattern"),
			b.Th().T("Handler"),
			b.Th().T("Params"),
		),
		func() any {
			for _, p := range mr.Probes {
				if !p.Matched {
					b.Tr("class", "miss").R(
						b.Td().T(p.Path),
						b.Td("colspan", "3").T("no match"),
					)
					continue
				}

				b.Tr().R(
					b.Td().T(p.Path),
					b.Td().T(p.Pattern),
					b.Td().T(p.Handler),
					b.Td().T(FormatParams(p.Params)),
				)
			}
			return nil
		}(),
	)
	return nil
}

// FormatParams renders params as key="value" pairs in capture order.
func FormatParams(params rtr.Params) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(strconv.Quote(p.Value))
	}
	return sb.String()
}

func handlerRef(h any) string {
	if s, ok := h.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", h)
}
