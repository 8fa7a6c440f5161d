package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/kirollos21/mazeroute/point"
)

// tripleRe matches a "(layer, x, y)" coordinate triple.
var tripleRe = regexp.MustCompile(`\((\d+),\s*(\d+),\s*(\d+)\)`)

// Session is the parsed, validated contents of an input file: grid
// dimensions, default penalties, obstructions, and nets, ready to seed
// a grid.Grid and drive a netroute.Router.
type Session struct {
	Width, Height            int
	ViaPenalty, WrongPenalty int64
	Obstructions             []point.Point
	Nets                     []point.Net
}

// Parse reads the text format: a header line "W,H,P_via,P_wrong"
// followed, in any order, by obstruction lines ("OBS (l,x,y)") and net
// lines ("<name> (l,x,y) (l,x,y) ..."). Blank lines and lines starting
// with '#' are ignored. Every configuration-error check is performed
// before Parse returns a *Session.
func Parse(r io.Reader) (*Session, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedHeader)
	}

	sess, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	seenNames := make(map[string]bool)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "OBS") {
			p, err := parseObstruction(line)
			if err != nil {
				return nil, err
			}
			sess.Obstructions = append(sess.Obstructions, p)
			continue
		}

		net, err := parseNet(line)
		if err != nil {
			return nil, err
		}
		if seenNames[net.Name] {
			return nil, fmt.Errorf("%w: %q", point.ErrDuplicateNetName, net.Name)
		}
		seenNames[net.Name] = true
		sess.Nets = append(sess.Nets, net)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := sess.checkBounds(); err != nil {
		return nil, err
	}

	return sess, nil
}

func parseHeader(line string) (*Session, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}

	nums := make([]int64, 4)
	for i, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
		}
		nums[i] = n
	}

	width, height := int(nums[0]), int(nums[1])
	via, wrong := nums[2], nums[3]
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonPositiveDim, width, height)
	}
	if via < 0 || wrong < 0 {
		return nil, fmt.Errorf("%w: via=%d wrong=%d", ErrNegativePenalty, via, wrong)
	}

	return &Session{Width: width, Height: height, ViaPenalty: via, WrongPenalty: wrong}, nil
}

func parseObstruction(line string) (point.Point, error) {
	m := tripleRe.FindStringSubmatch(line)
	if m == nil {
		return point.Point{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	return tripleToPoint(m), nil
}

func parseNet(line string) (point.Net, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return point.Net{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	name := fields[0]

	matches := tripleRe.FindAllStringSubmatch(line, -1)
	pins := make([]point.Point, 0, len(matches))
	for _, m := range matches {
		pins = append(pins, tripleToPoint(m))
	}

	net := point.Net{Name: name, Pins: pins}
	if err := net.Validate(); err != nil {
		return point.Net{}, err
	}

	return net, nil
}

func tripleToPoint(m []string) point.Point {
	layer, _ := strconv.Atoi(m[1])
	x, _ := strconv.Atoi(m[2])
	y, _ := strconv.Atoi(m[3])

	return point.Point{Layer: layer, X: x, Y: y}
}

func (s *Session) checkBounds() error {
	inBounds := func(p point.Point) bool {
		return p.Layer >= 1 && p.Layer <= 2 &&
			p.X >= 0 && p.X < s.Width &&
			p.Y >= 0 && p.Y < s.Height
	}

	for _, p := range s.Obstructions {
		if !inBounds(p) {
			return fmt.Errorf("%w: obstruction %s", ErrOutOfBounds, p)
		}
	}
	for _, net := range s.Nets {
		for _, p := range net.Pins {
			if !inBounds(p) {
				return fmt.Errorf("%w: pin %s in net %q", ErrOutOfBounds, p, net.Name)
			}
		}
	}

	return nil
}
