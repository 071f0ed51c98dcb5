// pkg/server/server.go

package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/invoice-generator/docs" // swagger spec
	"github.com/invoice-generator/pkg/directory"
	"github.com/invoice-generator/pkg/export"
	"github.com/invoice-generator/pkg/invoice"
	"github.com/invoice-generator/pkg/render"
)

// MaxBodyBytes bounds request bodies; records may carry data URL images.
const MaxBodyBytes = 5 * 1024 * 1024

//go:embed templates/*.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Options wires a Server.
type Options struct {
	Directory       *directory.Directory
	Images          export.ImageSource
	Render          render.Options
	PDF             export.PDFOptions
	DefaultCurrency invoice.Currency
	Now             func() time.Time
}

// Server is the stateless HTTP surface: every request carries the whole
// record, nothing is kept between requests.
type Server struct {
	opts Options
}

func New(opts Options) *Server {
	if opts.Directory == nil {
		opts.Directory = directory.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = invoice.DefaultCurrency
	}
	return &Server{opts: opts}
}

// Router returns the routes of the server.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.indexHandler).Methods("GET")
	r.HandleFunc("/healthz", s.healthHandler).Methods("GET")
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/defaults", s.defaultsHandler).Methods("GET")
	api.HandleFunc("/companies", s.companiesHandler).Methods("GET")
	api.HandleFunc("/users", s.usersHandler).Methods("GET")
	api.HandleFunc("/preview", s.previewHandler).Methods("POST")
	api.HandleFunc("/export", s.exportHandler).Methods("POST")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []invoice.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[ERROR] writing JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: err.Error()}
	var verr *invoice.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	writeJSON(w, status, resp)
}

// readRecord decodes and validates the request body.
func readRecord(w http.ResponseWriter, r *http.Request) (invoice.Record, bool) {
	var rec invoice.Record
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid record: %w", err))
		return rec, false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, errors.New("invalid record: unexpected data after the JSON object"))
		return rec, false
	}
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return rec, false
	}
	return rec, true
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Types      []invoice.DocumentType
		Currencies []invoice.Currency
		Companies  []directory.Company
		Users      []directory.User
	}{invoice.DocumentTypes(), invoice.Currencies(), s.opts.Directory.Companies(), s.opts.Directory.Users()}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		log.Printf("[ERROR] rendering index: %v", err)
		http.Error(w, "error rendering page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// healthHandler godoc
// @Summary  Liveness probe
// @Tags     meta
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /healthz [get]
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// defaultsHandler godoc
// @Summary  Record a new form starts from
// @Tags     records
// @Produce  json
// @Success  200 {object} invoice.Record
// @Router   /api/defaults [get]
func (s *Server) defaultsHandler(w http.ResponseWriter, r *http.Request) {
	rec := invoice.Apply(invoice.New(s.opts.Now()), invoice.SetCurrency(s.opts.DefaultCurrency))
	writeJSON(w, http.StatusOK, rec)
}

// companiesHandler godoc
// @Summary  Companies available for pre-filling
// @Tags     directory
// @Produce  json
// @Success  200 {array} directory.Company
// @Router   /api/companies [get]
func (s *Server) companiesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.opts.Directory.Companies())
}

// usersHandler godoc
// @Summary  Signers available for pre-filling
// @Tags     directory
// @Produce  json
// @Success  200 {array} directory.User
// @Router   /api/users [get]
func (s *Server) usersHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.opts.Directory.Users())
}

// previewHandler godoc
// @Summary  Lay out a record
// @Tags     documents
// @Accept   json
// @Produce  json
// @Param    record body invoice.Record true "invoice record"
// @Success  200 {object} render.Document
// @Failure  400 {object} errorResponse
// @Failure  422 {object} errorResponse
// @Router   /api/preview [post]
func (s *Server) previewHandler(w http.ResponseWriter, r *http.Request) {
	rec, ok := readRecord(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, render.Render(rec, s.opts.Render))
}

// exportHandler godoc
// @Summary  Export a record as PDF
// @Tags     documents
// @Accept   json
// @Produce  application/pdf
// @Param    record body invoice.Record true "invoice record"
// @Success  200 {file} file
// @Failure  400 {object} errorResponse
// @Failure  422 {object} errorResponse
// @Router   /api/export [post]
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	rec, ok := readRecord(w, r)
	if !ok {
		return
	}
	doc := render.Render(rec, s.opts.Render)

	var pdfBuffer bytes.Buffer
	_, err := export.WritePDF(r.Context(), doc, &pdfBuffer, s.opts.PDF, export.Options{Images: s.opts.Images})
	if err != nil {
		log.Printf("[ERROR] exporting %s: %v", doc.Filename, err)
		writeError(w, http.StatusInternalServerError, errors.New("error generating PDF"))
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(pdfBuffer.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBuffer.Bytes()); err != nil {
		log.Printf("[ERROR] writing PDF to response: %v", err)
	}
}

// RunWithGracefulShutdown serves h on addr until SIGINT or SIGTERM, then
// gives in-flight requests up to timeout to finish.
func RunWithGracefulShutdown(addr string, h http.Handler, timeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serverErr := make(chan error, 1)
	go func() {
		log.Printf("[INFO] listening on %s ...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	select {
	case err := <-serverErr:
		return err
	case sig := <-sigs:
		log.Printf("[INFO] got signal [%s], shutting down ...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] server shutdown failed: %v", err)
	}
	if err := <-serverErr; err != nil {
		return err
	}
	log.Printf("[INFO] shutdown complete")
	return nil
}
