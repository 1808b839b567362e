// Command dmd downloads a world save into a local directory so minedmap
// can render it. Any source go-getter understands works, including
// archives over HTTP, S3 and GCS buckets and git repositories.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/minedmap/internal/region"
)

func main() {
	var (
		src = flag.String("src", "", "world save source, e.g. https://example.com/world.zip")
		out = flag.String("o", "./world", "output save directory")
	)
	flag.Parse()

	if *src == "" {
		log.Fatal("source url required")
	}
	if *out == "" {
		log.Fatal("output dir path required")
	}

	if err := os.RemoveAll(*out); err != nil {
		log.Fatal(err)
	}

	log.Default().Printf("start downloading world %s", *src)

	if err := get.Get(*out, *src); err != nil {
		log.Fatal(err)
	}

	regions, err := filepath.Glob(filepath.Join(*out, "region", "*.mca"))
	if err != nil {
		log.Fatal(err)
	}
	n := 0
	for _, path := range regions {
		if _, _, ok := region.ParseFilename(filepath.Base(path)); ok {
			n++
		}
	}
	if n == 0 {
		log.Fatalf("%s does not look like a world save: no region files", *out)
	}

	log.Default().Printf("done downloading world %s: %d region files", *out, n)
}
