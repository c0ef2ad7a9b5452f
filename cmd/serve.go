package cmd

import (
	"github.com/phayes/freeport"
	"github.com/polysect/polysect/internal/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a server for solving bisection jobs over HTTP",
	Long: `Start a server for solving bisection jobs over HTTP.

Calling this command results in a RESTful HTTP server being created, to which solve jobs can be POSTed.
Responses contain the approximate root, the full iteration table and an id under which the rendered plot can be fetched.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()

		if servePort == 0 {
			var err error
			servePort, err = freeport.GetFreePort()
			if err != nil {
				logrus.Fatalf("Failed to find a free port - %v", err)
			}
			log.Infof("Picked free port %d", servePort)
		}

		serverType := server.HTTP
		if _, err := server.NewServer(serverType, servePort, log); err != nil {
			logrus.Fatalf("Failed to start webserver - %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 40064, "The port on which to start the server, or 0 to pick a free one")
}
