package main

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/aaneja/cascadesopt/cost"
)

// loadSelectivityOverrides merges a YAML file of the shape
//
//	t1:
//	  t2: 0.001
//	t4:
//	  t5: 0.1
//
// into sel, overriding/extending the built-in defaults.
func loadSelectivityOverrides(sel *cost.SelectivityTable, path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading selectivity file")
	}

	var overrides map[string]map[string]float64
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return errors.Wrap(err, "parsing selectivity file")
	}

	for a, inner := range overrides {
		for b, v := range inner {
			if err := sel.Set(a, b, v); err != nil {
				return errors.Wrapf(err, "selectivity override %s/%s", a, b)
			}
		}
	}
	return nil
}
