/*
Package catalog turns the usage scenarios of every SOLID example pair into
runnable demos that can be listed and selected by principle and variant.
*/
package catalog

import (
	"context"
	"io"
	"slices"

	apperrors "solid-example/pkg/errors"
)

type Principle string

const (
	DIP Principle = "dip"
	ISP Principle = "isp"
	OCP Principle = "ocp"
	SRP Principle = "srp"
)

// Title full principle name
func (p Principle) Title() string {
	switch p {
	case DIP:
		return "Dependency Inversion"
	case ISP:
		return "Interface Segregation"
	case OCP:
		return "Open/Closed"
	case SRP:
		return "Single Responsibility"
	default:
		return string(p)
	}
}

type Variant string

const (
	Violation Variant = "violation"
	Compliant Variant = "compliant"
)

var (
	principles = []Principle{DIP, ISP, OCP, SRP}
	variants   = []Variant{Violation, Compliant}
)

// Demo one side of an example pair
type Demo interface {
	Name() string
	Principle() Principle
	Variant() Variant
	Run(ctx context.Context, w io.Writer) error
}

type demo struct {
	principle Principle
	variant   Variant
	run       func(ctx context.Context, w io.Writer) error
}

func (d *demo) Name() string         { return string(d.principle) + "-" + string(d.variant) }
func (d *demo) Principle() Principle { return d.principle }
func (d *demo) Variant() Variant     { return d.variant }

func (d *demo) Run(ctx context.Context, w io.Writer) error {
	return d.run(ctx, w)
}

// Catalog ordered set of demos, principle first, violation before compliant.
type Catalog struct {
	demos  []Demo
	byName map[string]Demo
}

func New(opts Options) *Catalog {
	opts = opts.withDefaults()
	s := &scenarios{opts: opts}

	c := &Catalog{byName: make(map[string]Demo)}
	c.add(&demo{DIP, Violation, s.dipViolation})
	c.add(&demo{DIP, Compliant, s.dipCompliant})
	c.add(&demo{ISP, Violation, s.ispViolation})
	c.add(&demo{ISP, Compliant, s.ispCompliant})
	c.add(&demo{OCP, Violation, s.ocpViolation})
	c.add(&demo{OCP, Compliant, s.ocpCompliant})
	c.add(&demo{SRP, Violation, s.srpViolation})
	c.add(&demo{SRP, Compliant, s.srpCompliant})
	return c
}

func (c *Catalog) add(d Demo) {
	c.demos = append(c.demos, d)
	c.byName[d.Name()] = d
}

func (c *Catalog) All() []Demo {
	return slices.Clone(c.demos)
}

func (c *Catalog) Get(name string) (Demo, error) {
	d, ok := c.byName[name]
	if !ok {
		return nil, apperrors.UnknownExample(name)
	}
	return d, nil
}

// Select keeps catalog order. An empty filter matches everything.
func (c *Catalog) Select(principleNames, variantNames []string) ([]Demo, error) {
	for _, p := range principleNames {
		if !slices.Contains(principles, Principle(p)) {
			return nil, apperrors.UnknownExample(p)
		}
	}
	for _, v := range variantNames {
		if !slices.Contains(variants, Variant(v)) {
			return nil, apperrors.UnknownExample(v)
		}
	}

	var selected []Demo
	for _, d := range c.demos {
		if len(principleNames) > 0 && !slices.Contains(principleNames, string(d.Principle())) {
			continue
		}
		if len(variantNames) > 0 && !slices.Contains(variantNames, string(d.Variant())) {
			continue
		}
		selected = append(selected, d)
	}
	return selected, nil
}
