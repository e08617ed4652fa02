package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gobd/naru"
	"github.com/Gobd/naru/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/scott-cotton/cli"
)

func ops(cfg *OpsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ops.Parse(cc, args)
	if err != nil {
		cfg.Ops.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	switch len(args) {
	case 0:
		return listOps(cc.Out)
	case 1:
		op, err := naru.ParseOperation(args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return describeOp(cc.Out, op, cfg.format())
	}
	return fmt.Errorf("%w: ops takes at most one operation, got %v", cli.ErrUsage, args)
}

// listOps prints one line per operation: name, categories and summary.
func listOps(w io.Writer) error {
	catalog, err := openapi.Catalog()
	if err != nil {
		return err
	}
	for _, op := range naru.Operations() {
		cats := naru.Categories(op)
		names := make([]string, len(cats))
		for i, c := range cats {
			names[i] = c.String()
		}
		_, err := fmt.Fprintf(w, "%-16s %-36s %s\n", op, strings.Join(names, ","), catalog[op.String()].Description)
		if err != nil {
			return err
		}
	}
	return nil
}

func describeOp(w io.Writer, op naru.Operation, f format) error {
	s, err := openapi.OperationSchema(op)
	if err != nil {
		return err
	}
	d, err := s.MarshalJSON()
	if err != nil {
		return err
	}
	d, err = jsonToFormat(d, f)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// serveMux routes POST /{operation} to the operations and everything else to
// the document.
func serveMux(doc *openapi3.T) (http.Handler, error) {
	docHandler, err := openapi.Handler("/", doc)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("POST /{op}", openapi.OperationsHandler())
	mux.Handle("/", docHandler)
	return mux, nil
}

func docs(cfg *DocsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Docs.Parse(cc, args)
	if err != nil {
		cfg.Docs.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: docs takes no arguments, got %v", cli.ErrUsage, args)
	}
	doc, err := openapi.Document("naru", version)
	if err != nil {
		return err
	}
	if cfg.Serve != "" {
		h, err := serveMux(doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "serving operations at http://%s/{operation} and docs at http://%s/docs.json\n", cfg.Serve, cfg.Serve)
		srv := &http.Server{Addr: cfg.Serve, Handler: h, ReadHeaderTimeout: 10 * time.Second}
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	d, err = jsonToFormat(d, cfg.format())
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
