// Self-signed certificate generator for the authpages TLS server
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/vabxic/authpages/internal/certs"
)

var (
	outDir   string
	hostList string
)

func main() {
	flag.StringVar(&outDir, "out", "certificates", "output directory for cert.pem and key.pem")
	flag.StringVar(&hostList, "hosts", "localhost,127.0.0.1", "comma-separated hostnames and IPs for the certificate")
	flag.Parse()

	var hosts []string
	for _, h := range strings.Split(hostList, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	if len(hosts) == 0 {
		log.Fatalf("No hosts given")
	}

	certPEM, keyPEM, err := certs.Generate(hosts, certs.DefaultValidity)
	if err != nil {
		log.Fatalf("Failed to generate certificate: %v", err)
	}
	if err := certs.WritePair(outDir, certPEM, keyPEM); err != nil {
		log.Fatalf("Failed to write certificate pair: %v", err)
	}
	log.Printf("Wrote cert.pem and key.pem to %s for hosts: %s", outDir, strings.Join(hosts, ", "))
}
