// Command cnm-controller runs the reconciliation engine: every
// controller spec.md §4.2 names, wired onto a single controller-runtime
// manager sharing one API client and one config, whose log level is
// hot-reloaded when the config file changes.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
	ctrl "sigs.k8s.io/controller-runtime"

	cnmv1 "github.com/juniper/cnm/api/v1"
	"github.com/juniper/cnm/internal/cnmlog"
	"github.com/juniper/cnm/internal/config"
	"github.com/juniper/cnm/internal/crdinstall"
	"github.com/juniper/cnm/internal/metrics"
	cnmreconcile "github.com/juniper/cnm/internal/reconcile"
)

var (
	kubeconfig      string
	configPath      string
	metricsBindAddr string
)

func main() {
	root := &cobra.Command{
		Use:   "cnm-controller",
		Short: "Runs the cnm.juniper.net reconciliation engine",
		RunE:  run,
	}
	root.Flags().StringVar(&kubeconfig, "kubeconfig", filepath.Join(homedir.HomeDir(), ".kube", "config"), "path to the kubeconfig file; empty for in-cluster config")
	root.Flags().StringVar(&configPath, "config", "/etc/cnm/cnm.conf", "path to the controller's static configuration file")
	root.Flags().StringVar(&metricsBindAddr, "metrics-bind-address", ":8443", "address the prometheus metrics endpoint binds to")

	if err := root.Execute(); err != nil {
		cnmlog.Errorf("cnm-controller: %v", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cnmlog.SetLevel(levelFromString(cfg.LogLevel))

	restCfg, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return fmt.Errorf("building kubeconfig: %w", err)
	}

	mgr, err := ctrl.NewManager(restCfg, ctrl.Options{Scheme: buildScheme(), Logger: cnmlog.Logr()})
	if err != nil {
		return fmt.Errorf("creating manager: %w", err)
	}

	if err := crdinstall.Install(cmd.Context(), mgr.GetClient()); err != nil {
		return fmt.Errorf("installing CRDs: %w", err)
	}

	watcher, err := config.NewWatcher(configPath, func(c config.Config) {
		cnmlog.SetLevel(levelFromString(c.LogLevel))
	})
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("starting config watcher: %w", err)
	}
	defer watcher.Close()

	rc := &cnmreconcile.Context{Client: mgr.GetClient(), Config: cfg}

	if err := registerControllers(mgr, rc); err != nil {
		return fmt.Errorf("registering controllers: %w", err)
	}

	go func() {
		if err := metrics.Serve(cmd.Context(), metricsBindAddr); err != nil {
			cnmlog.Errorf("metrics server: %v", err)
		}
	}()

	cnmlog.Verbosef("cnm-controller starting")
	return mgr.Start(ctrl.SetupSignalHandler())
}

func buildScheme() *runtime.Scheme {
	s := runtime.NewScheme()
	_ = clientgoscheme.AddToScheme(s)
	_ = cnmv1.AddToScheme(s)
	_ = apiextensionsv1.AddToScheme(s)
	return s
}

func levelFromString(s string) cnmlog.Level {
	switch s {
	case "debug":
		return cnmlog.DebugLevel
	case "error":
		return cnmlog.ErrorLevel
	case "panic":
		return cnmlog.PanicLevel
	default:
		return cnmlog.VerboseLevel
	}
}
