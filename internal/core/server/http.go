package server

import (
	"fmt"
	"net/http"
	"time"
)

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }

func BuildServer(addr string, handler http.Handler, rt, wt, it time.Duration) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    rt,
		WriteTimeout:   wt,
		IdleTimeout:    it,
		MaxHeaderBytes: 1 << 20,
	}
}
