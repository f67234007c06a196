package main

import "github.com/urfave/cli/v2"

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a TOML configuration file",
	}
	envFlag = &cli.StringFlag{
		Name:  "env",
		Value: ".env",
		Usage: "Path to a dotenv file, ignored if it does not exist",
	}
	onceFlag = &cli.BoolFlag{
		Name:  "once",
		Usage: "Run a single pass and exit",
	}
)

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "nftdrop"
	app.Usage = "Send NFTs to the winners of a quest"
	app.Flags = []cli.Flag{configFlag, envFlag}
	app.Commands = []*cli.Command{
		{
			Action:      s.startDrop,
			Name:        "drop",
			Usage:       "Send NFTs to quest winners",
			Flags:       []cli.Flag{onceFlag},
			Category:    "Drop",
			Description: `Fetch the winners, resolve their addresses and send one NFT per new address. Repeats every drop interval unless --once is set.`,
		},
		{
			Action:      s.startReview,
			Name:        "review",
			Usage:       "Review pending address submissions",
			Flags:       []cli.Flag{onceFlag},
			Category:    "Drop",
			Description: `Accept pending address submissions containing a valid address and reject the others.`,
		},
		{
			Action:      s.startServe,
			Name:        "serve",
			Usage:       "Run drop and review periodically and expose metrics",
			Category:    "Drop",
			Description: `Used to run the dropper as a long lived service.`,
		},
		{
			Action:      s.startMigrate,
			Name:        "migrate",
			Usage:       "Create the transfer ledger tables",
			Category:    "Database",
			Description: `Used to create or update the database schema.`,
		},
	}

	s.app = app
}
