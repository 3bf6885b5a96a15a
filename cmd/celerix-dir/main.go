package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/celerix-dev/celerix-directory/pkg/sdk"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	dataDir := os.Getenv("CELERIX_DIR_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	dir, err := sdk.New(dataDir)
	if err != nil {
		log.Fatalf("Failed to open directory: %v", err)
	}

	command := strings.ToUpper(os.Args[1])
	args := os.Args[2:]

	switch command {
	case "LOGIN":
		if len(args) < 2 {
			log.Fatal("Usage: celerix-dir LOGIN <email> <password>")
		}
		client, ok := dir.(*sdk.Client)
		if !ok {
			log.Fatal("LOGIN requires a remote directory (set CELERIX_DIR_ADDR)")
		}
		token, err := client.Login(args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(token)

	case "CREATE":
		if len(args) < 3 {
			log.Fatal("Usage: celerix-dir CREATE <email> <password> <role> [name]")
		}
		name := ""
		if len(args) > 3 {
			name = args[3]
		}
		user, err := dir.CreateUser(args[0], args[1], name, args[2])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(user)

	case "GET":
		if len(args) < 1 {
			log.Fatal("Usage: celerix-dir GET <id>")
		}
		user, err := dir.GetUser(args[0])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(user)

	case "DEL":
		if len(args) < 1 {
			log.Fatal("Usage: celerix-dir DEL <id>")
		}
		deleted, err := dir.DeleteUser(args[0])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(deleted)

	case "LIST":
		users, err := dir.ListUsers()
		if err != nil {
			log.Fatal(err)
		}
		printJSON(users)

	case "PAGE":
		page, limit := 0, 0
		if len(args) > 0 {
			page, _ = strconv.Atoi(args[0])
		}
		if len(args) > 1 {
			limit, _ = strconv.Atoi(args[1])
		}
		result, err := dir.ListPage(page, limit)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(result)

	case "PING":
		if err := dir.Ping(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("PONG")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Celerix Directory CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  celerix-dir LOGIN <email> <password>")
	fmt.Println("  celerix-dir CREATE <email> <password> <role> [name]")
	fmt.Println("  celerix-dir GET <id>")
	fmt.Println("  celerix-dir DEL <id>")
	fmt.Println("  celerix-dir LIST")
	fmt.Println("  celerix-dir PAGE [page] [limit]")
	fmt.Println("  celerix-dir PING")
	fmt.Println("\nEnvironment Variables:")
	fmt.Println("  CELERIX_DIR_ADDR         Address of a remote directory (host:port)")
	fmt.Println("  CELERIX_DIR_TOKEN        Bearer token for remote operations")
	fmt.Println("  CELERIX_DIR_DATA_DIR     Data directory for embedded mode (default: ./data)")
	fmt.Println("  CELERIX_DIR_DISABLE_TLS  Set to true to talk plain HTTP")
}

func printJSON(v any) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(bytes))
}
