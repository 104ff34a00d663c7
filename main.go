package main

import (
	"log"

	"bms-server/confs"
	"bms-server/db"
	"bms-server/server"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// seed the apartment grid and the default admin (both idempotent)
	if err := db.SeedGrid(database, confs.GridFloors(), confs.GridUnitsPerFloor()); err != nil {
		log.Fatalf("Failed to seed apartments: %v", err)
	}
	if err := db.SeedAdmin(database, confs.AdminEmail(), confs.AdminPassword()); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	// run server
	srv := server.NewServer(database)
	srv.Start()
}
