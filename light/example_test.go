package light_test

import (
	"fmt"

	"github.com/katalvlaran/lvlens/light"
)

// ExamplePixelated_Function evaluates the same uniform source stored at two
// resolutions. Pixel values scale with pixel area, the returned surface
// brightness does not.
func ExamplePixelated_Function() {
	p, err := light.NewPixelated("bilinear")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	coarse := []float64{0, 1, 2, 3}
	fine := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}
	imgCoarse := constantImage(len(coarse), len(coarse), 1.5)
	imgFine := constantImage(len(fine), len(fine), 1.5*0.25)

	x, y := []float64{1.2, 2.9}, []float64{0.4, 1.7}
	a, _ := p.Function(x, y, coarse, coarse, imgCoarse)
	b, _ := p.Function(x, y, fine, fine, imgFine)
	fmt.Printf("coarse %.2f %.2f\n", a[0], a[1])
	fmt.Printf("fine   %.2f %.2f\n", b[0], b[1])

	_, err = light.NewPixelated("nearest")
	fmt.Println(err != nil)
	// Output:
	// coarse 1.50 1.50
	// fine   1.50 1.50
	// true
}
