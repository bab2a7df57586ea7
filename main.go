// Package main assistd developer portal assistant API
//
//	@title			assistd API
//	@version		1.0.0
//	@description	Developer portal assistant backend: change staging, review diffs and publishing as pull requests, plus LLM and Jira proxies
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://apiarycd.com/support
//	@contact.email	support@apiarycd.com
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host			localhost:3000
//	@BasePath		/api/v1
package main

import "github.com/apiarycd/assistd/internal"

//go:generate swag init --parseDependency --outputTypes go -g ./main.go -o ./internal/server/docs

func main() {
	internal.Run()
}
