// Package deployments serves the persisted per-service manifests over HTTP.
package deployments

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"we.com/marlin/registry/deployments"
	"we.com/marlin/types"
)

const serviceName = "service"

var (
	requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "marlin_deployments_requests_total",
		Help: "manifest API requests served",
	}, []string{"handler"})
)

func init() {
	prometheus.MustRegister(requests)
}

type status string

const (
	statusSuccess status = "success"
	statusError   status = "error"
)

type response struct {
	Status status      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// API serves manifests read from a store
type API struct {
	store *deployments.Store
}

// Install registers the manifest handlers on r
func Install(r *mux.Router, store *deployments.Store) {
	a := &API{store: store}

	s := r.PathPrefix("/v1/deployments").Subrouter()
	s.HandleFunc("/{service}", a.wrap("manifest", a.manifest)).Methods(http.MethodGet)
	s.HandleFunc("/{service}/{group}", a.wrap("mapping", a.mapping)).Methods(http.MethodGet)
}

type handler func(r *http.Request) (interface{}, error)

func (a *API) wrap(name string, hf handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := time.Now()
		requests.WithLabelValues(name).Inc()

		dat, err := hf(r)
		if err != nil {
			respondError(w, err)
		} else {
			respond(w, dat)
		}
		glog.Infof("%v %v", r.URL, time.Since(s))
	}
}

// manifest returns the whole manifest of a service; a service that never
// resolved serves an empty document, loading never fails
func (a *API) manifest(r *http.Request) (interface{}, error) {
	service := mux.Vars(r)[serviceName]
	return a.store.Load(service), nil
}

type notFound string

func (e notFound) Error() string { return string(e) }

// mapping returns the resolved state of one deploy group
func (a *API) mapping(r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	service := vars[serviceName]
	group := vars["group"]

	m := a.store.Load(service)
	key := types.MakeDeployGroupKey(service, group)
	mapping, ok := m.Mappings[key]
	if !ok {
		return nil, notFound("no mapping for " + string(key))
	}
	return mapping, nil
}

func respond(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	b, err := json.Marshal(&response{
		Status: statusSuccess,
		Data:   data,
	})
	if err != nil {
		glog.Errorf("api: encode response: %v", err)
		return
	}
	w.Write(b)
}

func respondError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	if _, ok := err.(notFound); ok {
		w.WriteHeader(http.StatusNotFound)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}

	b, merr := json.Marshal(&response{
		Status: statusError,
		Error:  err.Error(),
	})
	if merr != nil {
		glog.Errorf("api: encode error response: %v", merr)
		return
	}
	glog.Errorf("api error: %v", err)
	w.Write(b)
}
