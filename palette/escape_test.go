package palette

import "sync"

// escapeGrid renders escape-time counts over [-2,1]x[-1.5,1.5], one column
// per job.
func escapeGrid(width, height, iterations, workers int) Grid {
	grid := make(Grid, width)
	for x := range grid {
		grid[x] = make([]int, height)
	}

	var wg sync.WaitGroup
	columns := make(chan int, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(cols <-chan int) {
			defer wg.Done()
			for x := range cols {
				for y := 0; y < height; y++ {
					rx := 3*float64(x)/float64(width) - 2
					ry := 3*float64(y)/float64(height) - 1.5
					grid[x][y] = mandelbrotIteration(rx, ry, iterations)
				}
			}
		}(columns)
	}
	for x := 0; x < width; x++ {
		columns <- x
	}
	close(columns)
	wg.Wait()
	return grid
}

func mandelbrotIteration(a, b float64, iterations int) int {
	var x, y, xx, yy, xy float64

	for i := 0; i < iterations; i++ {
		xx, yy, xy = x*x, y*y, x*y
		if xx+yy > 4 {
			return i
		}
		x = xx - yy + a
		y = 2*xy + b
	}
	return iterations
}
