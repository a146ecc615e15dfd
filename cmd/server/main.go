package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apideployments "we.com/marlin/api/deployments"
	"we.com/marlin/logger"
	"we.com/marlin/registry/deployments"
)

var (
	srvaddr = flag.String("srv.addr", ":8989", "addr to listen to")
	soaDir  = flag.String("soa.dir", "/etc/marlin/soa", "SOA configuration directory holding per-service manifests")
)

func main() {
	flag.Parse()
	logger.InitLogs()

	term := make(chan os.Signal, 1)

	store := deployments.NewStore(*soaDir)

	router := mux.NewRouter()
	router.PathPrefix("/debug/").Handler(http.DefaultServeMux)
	router.PathPrefix("/metrics").Handler(promhttp.Handler())
	apideployments.Install(router, store)

	go listen(router)

	fmt.Println("server started")

	signal.Notify(term, os.Interrupt, syscall.SIGTERM)
	<-term

	glog.Infoln("Received SIGTERM, exiting gracefully...")
}

func listen(router *mux.Router) {
	if err := http.ListenAndServe(*srvaddr, router); err != nil {
		glog.Fatal(err)
	}
}
