package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/tabgenie"
	"golang.org/x/sync/errgroup"
)

// ExportRequest selects the tables to export and the output format.
type ExportRequest struct {
	Keys         []tabgenie.TableKey
	Format       tabgenie.ExportFormat
	IncludeProps bool

	// Linear configures the txt format.
	Linear tabgenie.LinearOptions

	// Edits replaces cell values of individual tables before export.
	Edits map[tabgenie.TableKey]map[int]string
}

// ExportResult lists the files written by an export, in request order.
type ExportResult struct {
	Files []string
}

// Export renders every requested table and saves one file per table to
// store. Files are committed only if every table was exported; on the
// first failure the store is aborted.
func (c *Catalog) Export(ctx context.Context, store tabgenie.ExportStore, req ExportRequest) (*ExportResult, error) {
	if _, err := tabgenie.ParseExportFormat(string(req.Format)); err != nil {
		return nil, err
	}
	if len(req.Keys) == 0 {
		return nil, tabgenie.Errorf(tabgenie.EINVALID, "no tables to export")
	}

	result := &ExportResult{Files: make([]string, len(req.Keys))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())
	for i, key := range req.Keys {
		g.Go(func() error {
			data, err := c.exportTable(gctx, key, req)
			if err != nil {
				return fmt.Errorf("export %s: %w", key, err)
			}
			file := &tabgenie.ExportFile{Name: key.Filename(req.Format.Extension()), Data: data}
			if err := store.Save(gctx, file); err != nil {
				return fmt.Errorf("save %s: %w", file.Name, err)
			}
			result.Files[i] = file.Name
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if abortErr := store.Abort(); abortErr != nil {
			return nil, fmt.Errorf("%w (abort: %v)", err, abortErr)
		}
		return nil, err
	}
	if err := store.Commit(); err != nil {
		return nil, fmt.Errorf("commit export: %w", err)
	}
	return result, nil
}

// exportTable renders a single table in the requested format.
func (c *Catalog) exportTable(ctx context.Context, key tabgenie.TableKey, req ExportRequest) ([]byte, error) {
	t, err := c.Table(ctx, key, req.Edits[key])
	if err != nil {
		return nil, err
	}

	switch req.Format {
	case tabgenie.FormatTxt:
		return []byte(tabgenie.Linearize(t, req.Linear)), nil
	case tabgenie.FormatTriples:
		triples, err := c.exportTriples(key, t)
		if err != nil {
			return nil, err
		}
		return json.MarshalIndent(triples, "", "  ")
	case tabgenie.FormatJSON:
		return tabgenie.ToJSON(t, req.IncludeProps)
	case tabgenie.FormatHTML:
		html, err := c.exportHTML(t, req.IncludeProps)
		return []byte(html), err
	case tabgenie.FormatCSV:
		s, err := tabgenie.ToFrame(t).CSV()
		return []byte(s), err
	case tabgenie.FormatMarkdown:
		if c.Converter == nil {
			return nil, tabgenie.Errorf(tabgenie.EINTERNAL, "no markdown converter configured")
		}
		html, err := c.exportHTML(t, req.IncludeProps)
		if err != nil {
			return nil, err
		}
		md, err := c.Converter.Convert(html)
		return []byte(md), err
	case tabgenie.FormatRDF:
		if c.Encoder == nil {
			return nil, tabgenie.Errorf(tabgenie.EINTERNAL, "no triple encoder configured")
		}
		triples, err := c.exportTriples(key, t)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := c.Encoder.EncodeTriples(&buf, triples); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case tabgenie.FormatReference:
		refs := t.References()
		if len(refs) == 0 {
			return []byte{}, nil
		}
		return []byte(strings.Join(refs, "\n") + "\n"), nil
	case tabgenie.FormatXLSX:
		if c.Workbooks == nil {
			return nil, tabgenie.Errorf(tabgenie.EINTERNAL, "no workbook writer configured")
		}
		var buf bytes.Buffer
		sheets := []tabgenie.Sheet{{Name: key.String(), Table: t}}
		if err := c.Workbooks.WriteWorkbook(&buf, sheets, req.IncludeProps); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, tabgenie.Errorf(tabgenie.EINVALID, "unknown export format %q", req.Format)
}

func (c *Catalog) exportHTML(t *tabgenie.Table, includeProps bool) (string, error) {
	if c.Renderer == nil {
		return "", tabgenie.Errorf(tabgenie.EINTERNAL, "no html renderer configured")
	}
	return c.Renderer.RenderHTML(t, tabgenie.HTMLOptions{Format: tabgenie.HTMLExport, IncludeProps: includeProps})
}

// exportTriples tolerates rows skipped by fixed-layout extraction.
func (c *Catalog) exportTriples(key tabgenie.TableKey, t *tabgenie.Table) ([]tabgenie.Triple, error) {
	triples, err := c.triples(key, t, nil)
	if err != nil && tabgenie.ErrorCode(err) != tabgenie.ETRIPLE {
		return nil, err
	}
	if triples == nil {
		triples = []tabgenie.Triple{}
	}
	return triples, nil
}
