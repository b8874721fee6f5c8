// Command kurel compiles a Kubernetes configuration package and can apply
// or remove the result on a cluster.
package main

import "github.com/go-kure/kure/pkg/cmd/kurel"

func main() {
	kurel.Execute()
}
