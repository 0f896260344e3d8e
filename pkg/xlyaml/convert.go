package xlyaml

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/collection"
	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/models"
	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/parser"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// Convert reads an Excel file and builds one collection per block of every
// selected sheet.
func Convert(ctx context.Context, path string, opts Options) (*WorkbookData, error) {
	log := opts.logger()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	log.Info("opening workbook", "path", path)
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	var area *models.Area
	if opts.Area != "" {
		if area, err = parser.ParseArea(opts.Area); err != nil {
			return nil, err
		}
	}
	var printAreas map[string]models.Area
	if opts.UsePrintAreas && area == nil {
		printAreas = parser.PrintAreas(f)
	}

	sheetList := f.GetSheetList()
	for _, name := range opts.Sheets {
		if !slices.Contains(sheetList, name) {
			return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
		}
	}
	log.Info("found sheets", "count", len(sheetList))

	wb := &WorkbookData{
		BookName: filepath.Base(path),
		Sheets:   make(map[string]SheetData),
	}

	for _, sheetName := range sheetList {
		if !opts.ShouldConvertSheet(sheetName) {
			log.Debug("skipping sheet", "sheet", sheetName)
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		readOpts := parser.ReadOptions{RawValues: opts.RawValues, Area: area}
		if pa, ok := printAreas[sheetName]; ok {
			readOpts.Area = &pa
		}

		blocks, err := parser.ReadSheet(f, sheetName, readOpts)
		if err != nil {
			return nil, NewSheetError(sheetName, err)
		}

		collections, err := BuildCollections(ctx, sheetName, blocks, opts)
		if err != nil {
			return nil, err
		}

		wb.SheetOrder = append(wb.SheetOrder, sheetName)
		wb.Sheets[sheetName] = SheetData{
			Name:        sheetName,
			Blocks:      blocks,
			Collections: collections,
		}
		log.Info("converted sheet", "sheet", sheetName, "blocks", len(blocks))
	}

	return wb, nil
}

// BuildCollections reduces every block of a sheet. Blocks are independent,
// so they are reduced concurrently; the result keeps block order.
func BuildCollections(ctx context.Context, sheetName string, blocks []models.Block, opts Options) ([]*collection.Collection, error) {
	log := opts.logger().With("sheet", sheetName)
	b := &collection.Builder{Lenient: opts.Lenient, Logger: log}

	out := make([]*collection.Collection, len(blocks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i, blk := range blocks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Debug("building block",
				"block", i+1, "range", parser.BlockRange(blk), "cells", parser.CountNonEmptyCells(blk))

			c, err := b.Reduce(blk)
			if err != nil {
				return NewBlockError(sheetName, i+1, blk, err)
			}
			out[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
