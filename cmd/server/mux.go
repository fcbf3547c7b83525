package main

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/skynet2/starling-ynab-importer/pkg/app"
)

// functionName must match the directory holding function.json.
const functionName = "sync"

type Handler struct {
	syncer   Syncer
	reporter Reporter
	logger   zerolog.Logger
}

func NewHandler(
	syncer Syncer,
	reporter Reporter,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		syncer:   syncer,
		reporter: reporter,
		logger:   logger,
	}
}

func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/"+functionName, h).Methods(http.MethodPost)

	return r
}

// ServeHTTP handles one timer invocation from the functions host and answers
// with the invocation response shape. A non-2xx status marks the run failed.
func (h *Handler) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	ctx := app.RunContext(r.Context(), h.logger)

	var invocation InvocationRequest

	b, err := io.ReadAll(r.Body)
	if err != nil {
		writeInvocation(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	if len(b) > 0 {
		if err = json.Unmarshal(b, &invocation); err != nil {
			writeInvocation(w, http.StatusBadRequest, "invalid invocation payload: "+err.Error(), nil)
			return
		}
	}

	if timer, ok := invocation.Data["timer"]; ok {
		zerolog.Ctx(ctx).Debug().RawJSON("timer", timer).Msg("timer invocation")
	}

	result, err := h.syncer.Sync(ctx)
	if err != nil {
		writeInvocation(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	report := h.reporter.Report(ctx, result)

	writeInvocation(w, http.StatusOK, report, report)
}

func writeInvocation(
	w http.ResponseWriter,
	status int,
	logLine string,
	returnValue interface{},
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(&InvocationResponse{
		Outputs:     map[string]interface{}{},
		Logs:        []string{logLine},
		ReturnValue: returnValue,
	})
}
