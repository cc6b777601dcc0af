package main

import (
	"flag"
	"log"

	"github.com/youruser/photojoin/internal/imageio"
	"github.com/youruser/photojoin/internal/join"
)

var (
	output     = flag.String("o", "", "output image file (format chosen by extension)")
	direction  = flag.String("d", "", "join direction (horizontal/vertical)")
	filterName = flag.String("filter", "gaussian", "resize filter (nearest/triangle/catmull_rom/gaussian/lanczos3)")
	override   = flag.Bool("f", false, "overwrite the output file if it exists")
	toLargest  = flag.Bool("l", false, "size all images to fit the largest image")
	toSmallest = flag.Bool("s", false, "size all images to fit the smallest image")
	qrText     = flag.String("qr", "", "append a QR code of this text as the last image")
)

func main() {
	flag.Parse()

	if *output == "" {
		log.Fatal("no output file provided (-o)")
	}
	if flag.NArg() == 0 {
		log.Fatal("no input images provided")
	}
	dir, err := join.ParseDirection(*direction)
	if err != nil {
		log.Fatal(err)
	}
	if *toLargest && *toSmallest {
		log.Fatal("only one of -l and -s may be provided")
	}
	sizing := join.ToSmallest
	if *toLargest {
		sizing = join.ToLargest
	}

	images, err := imageio.Load(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	if *qrText != "" {
		qr, err := imageio.QRImage(*qrText, 400)
		if err != nil {
			log.Fatal("generating QR code:", err)
		}
		images = append(images, qr)
	}

	log.Printf("joining %d images %sly, sizing %s, filter %s",
		len(images), dir, sizing, *filterName)
	out, err := join.Join(images, join.Options{
		Direction: dir,
		Sizing:    sizing,
		Filter:    join.ParseFilter(*filterName),
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("generated %dx%d image", out.Bounds().Dx(), out.Bounds().Dy())
	if err := imageio.Save(out, *output, *override); err != nil {
		log.Fatal(err)
	}
	log.Println("saved joined photo to", *output)
}
