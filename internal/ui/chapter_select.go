package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/course-tools/thinkific-downloader/internal/course"
)

// SelectChapters prints the chapter menu and prompts for a selection.
// Accepted forms: 'all', comma separated ordinals and hyphenated ranges,
// e.g. '1,3,5-7'. Malformed range input selects all chapters.
func SelectChapters(chapters []course.Chapter) ([]int, error) {
	divider := strings.Repeat("=", 40)
	fmt.Println("\n" + divider)
	fmt.Println("       AVAILABLE CHAPTERS")
	fmt.Println(divider)
	for _, ch := range chapters {
		fmt.Printf(" [%d] %s\n", ch.Ordinal, strings.TrimSpace(ch.Name))
	}
	fmt.Println(divider)
	fmt.Println("Enter chapter numbers (e.g., 'all', '1,3,5', '1-5')")

	prompt := promptui.Prompt{Label: "Select Chapters"}
	input, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return ParseSelection(input, len(chapters)), nil
}

// ParseSelection parses the selection input into sorted 1-based ordinals.
// Empty input and 'all' select everything; an unparseable range falls back
// to everything; plain tokens that are not numbers are ignored.
func ParseSelection(input string, total int) []int {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "all") {
		return allChapters(total)
	}

	selected := make(map[int]bool)
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if start, end, isRange := strings.Cut(part, "-"); isRange {
			s, err1 := strconv.Atoi(strings.TrimSpace(start))
			e, err2 := strconv.Atoi(strings.TrimSpace(end))
			if err1 != nil || err2 != nil {
				return allChapters(total)
			}
			for i := s; i <= e; i++ {
				selected[i] = true
			}
		} else if n, err := strconv.Atoi(part); err == nil {
			selected[n] = true
		}
	}

	ordinals := make([]int, 0, len(selected))
	for n := range selected {
		ordinals = append(ordinals, n)
	}
	sort.Ints(ordinals)
	return ordinals
}

func allChapters(total int) []int {
	all := make([]int, total)
	for i := range all {
		all[i] = i + 1
	}
	return all
}
