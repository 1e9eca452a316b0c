package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ardanlabs/conf"
	"github.com/redis/go-redis/v9"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
	"github.com/Jaspa-lSingh/Shiftwise/internal/auth"
	"github.com/Jaspa-lSingh/Shiftwise/internal/commands"
	"github.com/Jaspa-lSingh/Shiftwise/internal/pkg/config"
	"github.com/Jaspa-lSingh/Shiftwise/internal/pkg/repository/postgresql"
	"github.com/Jaspa-lSingh/Shiftwise/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln("main: error:", err)
	}
}

func run() error {
	var flags struct {
		Web struct {
			Port string `conf:"default::8080"`
		}
		Migrate bool `conf:"default:true,help:run schema migrations on start"`
	}

	if err := conf.Parse(os.Args[1:], "SHIFTWISE", &flags); err != nil {
		if err == conf.ErrHelpWanted {
			usage, err := conf.Usage("SHIFTWISE", &flags)
			if err != nil {
				return err
			}
			fmt.Println(usage)
			return nil
		}
		return err
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	postgresDB := postgresql.NewDB(postgresql.Settings{
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		Username:   cfg.DBUsername,
		Password:   cfg.DBPassword,
		Name:       cfg.DBName,
		DisableTLS: cfg.DisableTLS,
	})
	defer postgresDB.Close()

	if flags.Migrate {
		commands.MigrateUP(postgresDB)
	}

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisDB.Close()

	authenticator, err := auth.New(cfg.PrivateKeyFile)
	if err != nil {
		return err
	}

	app := web.NewApp()

	r := router.NewRouter(app, postgresDB, redisDB, flags.Web.Port, authenticator, cfg)

	return r.Init()
}
