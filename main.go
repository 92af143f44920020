package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"go-docdb/config"
	"go-docdb/pkg/types"
	execgroup "go-docdb/services/executor/group"
	"go-docdb/services/parser"
	"go-docdb/services/parser/pipeline/accumulator"
	"go-docdb/services/parser/pipeline/expression"
	"go-docdb/util/logger"
	"go-docdb/util/stream"
)

// Runs one group stage over newline-delimited JSON documents:
//
//	go-docdb '{"$group": {"_id": "$k", "total": {"$sum": "$amount"}}}' < docs.jsonl
func main() {
	if len(os.Args) != 2 {
		logger.L.Fatal("usage: go-docdb '<stage spec>' < documents.jsonl")
	}

	accumulator.RegisterBuiltins()

	configs := config.New()
	ps := parser.New()
	ctx := expression.NewContext()

	spec, err := ps.ParseGroupStage(ctx, []byte(os.Args[1]))
	if err != nil {
		logger.L.Fatalf("invalid stage: %v", err)
	}

	st := stream.New[types.Document](configs.PipelineConfig.StreamBuffer)
	gr := execgroup.New(ctx, spec, st)

	go func() {
		defer st.Close()

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}

			var doc types.Document
			if err := json.Unmarshal(line, &doc); err != nil {
				logger.L.Fatalf("invalid document: %v", err)
			}
			if err := gr.Add(doc); err != nil {
				logger.L.Fatalf("group stage failed: %v", err)
			}
		}
		if err := scanner.Err(); err != nil {
			logger.L.Fatalf("reading documents: %v", err)
		}

		if _, err := gr.Flush(); err != nil {
			logger.L.Fatalf("flushing group stage: %v", err)
		}
	}()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for {
		record, ok := st.Pop()
		if !ok {
			break
		}

		blob, err := json.Marshal(record)
		if err != nil {
			logger.L.Fatalf("encoding result: %v", err)
		}
		fmt.Fprintln(out, string(blob))
	}
}
