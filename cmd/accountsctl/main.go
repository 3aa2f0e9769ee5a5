package main

import (
	"context"
	"log"
	"os"

	"google.golang.org/grpc"

	"github.com/jabbaspizza/accounts/internal/ctl"
	pb "github.com/jabbaspizza/accounts/internal/proto"
	"github.com/jabbaspizza/accounts/internal/server/config"
	"github.com/jabbaspizza/accounts/internal/server/creds"
)

func main() {

	cfg := config.LoadConfig()

	tc, err := creds.ClientCredentials(cfg.CertsDir)
	if err != nil {
		log.Fatalf("tls init error: %v", err)
	}

	conn, err := grpc.NewClient(cfg.EndpointAddrGRPC, grpc.WithTransportCredentials(tc))
	if err != nil {
		log.Fatalf("grpc client error: %v", err)
	}
	defer conn.Close()

	app := ctl.NewApp(pb.NewAccountServiceClient(conn), os.Stdout, cfg.RequestTimeout)

	if err := app.Run(context.Background(), flagArgs()); err != nil {
		log.Fatalf("%v", err)
	}
}

// configFlags are the flags consumed by config.LoadConfig; they are stripped
// here so the subcommand parser only sees its own arguments.
var configFlags = map[string]bool{
	"-c": true, "-config": true,
	"-a": true, "-w": true, "-s": true, "-k": true,
	"-d": true, "-p": true, "-u": true, "-x": true, "-n": true, "-t": true,
}

func flagArgs() []string {
	args := make([]string, 0, len(os.Args)-1)
	skip := false
	for _, a := range os.Args[1:] {
		if skip {
			skip = false
			continue
		}
		if configFlags[a] {
			skip = true
			continue
		}
		args = append(args, a)
	}
	return args
}
