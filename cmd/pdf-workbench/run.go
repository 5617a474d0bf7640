// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf-workbench/internal/history"
	"github.com/pdiddy/pdf-workbench/internal/ops"
	"github.com/pdiddy/pdf-workbench/internal/secrets"
	"github.com/pdiddy/pdf-workbench/internal/session"
	"github.com/pdiddy/pdf-workbench/internal/source"
	"github.com/pdiddy/pdf-workbench/pkg/types"
)

// batchFailure reports that some files of a batch failed. The per-file
// reasons have already been printed.
type batchFailure struct {
	op     string
	failed int
	total  int
}

func (e *batchFailure) Error() string {
	return fmt.Sprintf("%s: %d of %d file(s) failed", e.op, e.failed, e.total)
}

// run holds the state of one command invocation: the session, the runner
// and what goes into the history journal.
type run struct {
	cmd     *cobra.Command
	op      string
	sess    *session.Session
	runner  *ops.Runner
	started time.Time
	outputs []string
}

// startRun creates a session for op and loads refs into it.
func startRun(cmd *cobra.Command, op string, refs []string) (*run, error) {
	r := &run{
		cmd:     cmd,
		op:      op,
		sess:    session.New(),
		runner:  ops.New(appCfg, log.WithField("op", op), cmd.OutOrStdout()),
		started: time.Now(),
	}
	explicit, _ := cmd.Flags().GetString("password")
	r.sess.Password = secrets.Password(loadedSecrets, secrets.PasswordKey, explicit)

	log.WithFields(logrus.Fields{"op": op, "session": r.sess.ID, "inputs": len(refs)}).Debug("loading inputs")
	loader := source.NewLoader(appCfg.HTTP, log)
	if err := loader.LoadInto(cmd.Context(), r.sess, refs); err != nil {
		r.finish(err)
		return nil, err
	}
	return r, nil
}

// write stores arts in the output directory and remembers their paths.
func (r *run) write(arts ...types.Artifact) error {
	paths, err := ops.WriteDir(appCfg.Output.Dir, arts)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(r.cmd.OutOrStdout(), "wrote %s\n", p)
	}
	r.outputs = append(r.outputs, paths...)
	return nil
}

// writeBatch stores the outputs of the successful files of res.
func (r *run) writeBatch(res types.BatchResult) error {
	var arts []types.Artifact
	for _, f := range res.Files {
		if f.OK && f.Output != nil {
			arts = append(arts, *f.Output)
		}
	}
	if len(arts) == 0 {
		return nil
	}
	return r.write(arts...)
}

// finish journals the run with err as its outcome, clears the session and
// returns err.
func (r *run) finish(err error) error {
	status := types.StatusOK
	msg := ""
	if err != nil {
		status = types.StatusFailed
		msg = ops.Describe(err)
	}
	r.journal(status, msg)
	r.sess.Reset()
	return err
}

// finishBatch journals a batch run and converts failures into an error.
func (r *run) finishBatch(res types.BatchResult, err error) error {
	if err != nil {
		return r.finish(err)
	}
	status := history.StatusOf(res)
	msg := ""
	if res.HasFailures() {
		msg = fmt.Sprintf("%d of %d file(s) failed", res.Failed, res.Total())
	}
	r.journal(status, msg)
	r.sess.Reset()

	if res.HasFailures() {
		return &batchFailure{op: r.op, failed: res.Failed, total: res.Total()}
	}
	return nil
}

func (r *run) journal(status types.HistoryStatus, msg string) {
	if !appCfg.History.Enabled {
		return
	}
	if off, _ := r.cmd.Flags().GetBool("no-history"); off {
		return
	}

	store, err := history.NewStore(appCfg.History.Path)
	if err != nil {
		log.WithError(err).Warn("history unavailable")
		return
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = store.Record(ctx, types.HistoryRecord{
		Operation: r.op,
		Inputs:    r.sess.Names(),
		Outputs:   r.outputs,
		Status:    status,
		Message:   msg,
		StartedAt: r.started,
		Duration:  time.Since(r.started),
	})
	if err != nil {
		log.WithError(err).Warn("could not record history")
	}
}
