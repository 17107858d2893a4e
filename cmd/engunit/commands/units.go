package commands

import (
	"fmt"
	"io"

	"github.com/engunit/engunit-go/pkg/unit"
)

// RunUnits lists the units of one domain, or of all domains when domain is
// empty.
func RunUnits(domain string, w io.Writer) error {
	domains := unit.Domains
	if domain != "" {
		d, err := unit.ParseDomain(domain)
		if err != nil {
			return err
		}
		domains = []unit.Domain{d}
	}

	for i, d := range domains {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := printDomain(w, d); err != nil {
			return err
		}
	}
	return nil
}

func printDomain(w io.Writer, d unit.Domain) error {
	r, err := unit.Lookup(d)
	if err != nil {
		return err
	}

	if base := r.Base(); base != nil {
		fmt.Fprintf(w, "%s (reference %s)\n", d, base)
	} else {
		fmt.Fprintf(w, "%s (reference: signal fraction)\n", d)
	}
	for _, u := range r.Units() {
		fmt.Fprintf(w, "  %-10s %s\n", u.String(), u.Symbol())
	}
	return nil
}
