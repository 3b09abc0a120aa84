// Command augmentd serves the augmentation policy over gRPC, letting the
// training service's data pipeline delegate per-sample transforms here.
package main

// #region imports
import (
	"flag"
	"log"
	"net"
	"os"

	pb "github.com/augtune-dev/augtune/gen/trainer"
	"github.com/augtune-dev/augtune/internal/augserver"
	"google.golang.org/grpc"
)

// #endregion

// #region main

func main() {
	listen := flag.String("listen", envOr("AUGMENTD_LISTEN", ":50052"), "listen address")
	flag.Parse()

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		log.Fatalf("listen on %s: %v", *listen, err)
	}

	srv := grpc.NewServer()
	pb.RegisterAugmenterServer(srv, augserver.New())

	log.Printf("[AUGD] serving on %s", *listen)
	if err := srv.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
