// ABOUTME: Record fetch CLI command
// ABOUTME: Prints contacts, deals, activities or companies as a table or JSON
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/crmdash/dashboard"
)

type fetchOutput[T any] struct {
	Source  dashboard.Source `json:"source"`
	Warning string           `json:"warning,omitempty"`
	Records []T              `json:"records"`
}

// FetchCommand loads one entity kind through the active integration.
func FetchCommand(env *Env, args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	asJSON := fs.Bool("json", env.JSON, "Output JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: fetch <contacts|deals|activities|companies>")
	}

	ctx := context.Background()
	s := env.Store.Current()

	switch kind := fs.Arg(0); kind {
	case "contacts":
		res := env.Loader.Contacts(ctx, s)
		return printResult(env, *asJSON, res, []string{"NAME", "COMPANY", "EMAIL", "PHONE", "STATUS"}, func(w io.Writer) {
			for _, c := range res.Records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.Name, c.Company, c.Email, c.Phone, c.Status)
			}
		})
	case "deals":
		res := env.Loader.Deals(ctx, s)
		return printResult(env, *asJSON, res, []string{"TITLE", "COMPANY", "VALUE", "STAGE", "PROB", "OWNER", "CLOSE"}, func(w io.Writer) {
			for _, d := range res.Records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\t%s\t%s\n", d.Title, d.Company, d.ValueFmt, d.Stage, d.Probability, d.Owner, d.CloseDate)
			}
		})
	case "activities":
		res := env.Loader.Activities(ctx, s)
		return printResult(env, *asJSON, res, []string{"TYPE", "TITLE", "CONTACT", "DATE", "TIME", "DONE"}, func(w io.Writer) {
			for _, a := range res.Records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", a.Type, a.Title, a.Contact, a.Date, a.Time, yesNo(a.Completed))
			}
		})
	case "companies":
		res := env.Loader.Companies(ctx, s)
		return printResult(env, *asJSON, res, []string{"NAME", "INDUSTRY", "CITY", "CONTACTS", "DEALS", "REVENUE", "STATUS"}, func(w io.Writer) {
			for _, c := range res.Records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", c.Name, c.Industry, c.Address,
					strconv.Itoa(c.ContactCount), strconv.Itoa(c.DealCount), c.RevenueFmt, c.Status)
			}
		})
	default:
		return fmt.Errorf("unknown entity: %s (want contacts, deals, activities or companies)", kind)
	}
}

func printResult[T any](env *Env, asJSON bool, res dashboard.Result[T], header []string, rows func(io.Writer)) error {
	if asJSON {
		return env.writeJSON(fetchOutput[T]{Source: res.Source, Warning: res.Warning(), Records: res.Records})
	}

	out := env.out()
	if res.Source == dashboard.SourceDemo {
		if warning := res.Warning(); warning != "" {
			fmt.Fprintf(out, "⚠️  %s Showing demo data.\n\n", warning)
		} else {
			fmt.Fprintln(out, "Showing demo data. Connect an integration for live records.")
			fmt.Fprintln(out)
		}
	}

	if len(res.Records) == 0 {
		fmt.Fprintln(out, "No records found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	rows(w)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d records (%s)\n", len(res.Records), res.Source)
	return nil
}
