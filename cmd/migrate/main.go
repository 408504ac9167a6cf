package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"entrenadores/config"
	"entrenadores/internal/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: archivo .env no encontrado, se usan solo las variables del entorno: %v", err)
	}

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./sql", "directorio con los archivos de migración")
	flag.Parse()

	cfg := config.LoadMigrationConfig()

	db, err := database.NewPostgresDB(cfg.DatabaseURL, database.DefaultPoolConfig)
	if err != nil {
		log.Fatalf("goose: fallo al conectar con la BD: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: fallo al cerrar la BD: %v", err)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s: ok\n", command)
}
