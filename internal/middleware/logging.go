package middleware

import (
	"net/http"

	"github.com/ngrujic/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}
			userIp, err := pkg.ReadUserIP(r)
			if err != nil {
				userIp = r.RemoteAddr
			}
			log.Tracef("[%s] [%s] %s", r.Method, userIp, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}
