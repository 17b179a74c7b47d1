package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/docker/docker/client"

	"github.com/clusterkit/imgresolve/cmd/imgresolve/config"
	"github.com/clusterkit/imgresolve/lib/catalog"
	"github.com/clusterkit/imgresolve/lib/deployment"
	"github.com/clusterkit/imgresolve/lib/resolver"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application terminated", "error", err)
		os.Exit(1)
	}
}

func run() error {
	display := flag.Bool("d", false, "display known deployments and exit")
	quiet := flag.Bool("q", false, "decrease output verbosity")
	backend := flag.String("backend", "", "catalog backend (ec2 or docker), overrides CATALOG_BACKEND")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *backend != "" {
		cfg.Backend = *backend
	}

	// Setup logger
	level := slog.LevelInfo
	if *quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	names, err := deployment.List(cfg.DeploymentsDir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("the deployments directory %q is empty", cfg.DeploymentsDir)
	}

	if *display {
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	name, err := pickDeployment(flag.Arg(0), names)
	if err != nil {
		return err
	}

	d, err := deployment.Load(cfg.DeploymentsDir, name)
	if err != nil {
		return err
	}

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.ResolveTimeout)
	defer cancel()

	cat, err := newCatalog(ctx, cfg.Backend)
	if err != nil {
		return err
	}
	r := resolver.NewResolver(cat)

	logger.InfoContext(ctx, "resolving deployment images", "deployment", d.Name, "backend", cfg.Backend)

	for _, family := range d.Families() {
		spec := d.Images[family]
		img, err := r.Resolve(ctx, resolver.Query{
			Owner:       resolver.Owner(spec.Owner),
			NamePattern: spec.NamePattern,
		})
		if err != nil {
			return fmt.Errorf("resolve image family %q: %w", family, err)
		}
		logger.InfoContext(ctx, "resolved image",
			"family", family, "id", img.ID, "name", img.Name, "created_at", img.CreatedAt)
		fmt.Printf("%s\t%s\n", family, img.ID)
	}

	return nil
}

// pickDeployment applies the original selection rule: an explicit name wins,
// a single known deployment is assumed, anything else needs the user to
// choose.
func pickDeployment(arg string, names []string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if len(names) == 1 {
		return names[0], nil
	}
	return "", fmt.Errorf("you need to supply the name of a deployment; the following are available: %v", names)
}

func newCatalog(ctx context.Context, backend string) (resolver.Catalog, error) {
	switch backend {
	case "ec2":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return catalog.NewEC2(ec2.NewFromConfig(awsCfg)), nil
	case "docker":
		cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
		if err != nil {
			return nil, fmt.Errorf("create docker client: %w", err)
		}
		return catalog.NewDocker(cli), nil
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", backend)
	}
}
