package main

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/webbmaffian/go-arr/dynarr"
	"github.com/webbmaffian/go-arr/fixarr"
)

type scenario struct {
	name string
	run  func(input []int) error
}

type fillSize struct{}

func (fillSize) Size() int { return 1 << 16 }

var scenarios = []scenario{
	{"push-back", pushBack},
	{"push-back-reserved", pushBackReserved},
	{"slice-append", sliceAppend},
	{"insert-front", insertFront},
	{"erase-front", eraseFront},
	{"sort", sortShuffled},
	{"fixed-fill", fixedFill},
}

func selectScenarios(names []string) ([]scenario, error) {
	if len(names) == 0 {
		return scenarios, nil
	}

	selected := make([]scenario, 0, len(names))

	for _, name := range names {
		s, ok := lo.Find(scenarios, func(s scenario) bool { return s.name == name })

		if !ok {
			return nil, errors.Errorf("unknown scenario %q", name)
		}

		selected = append(selected, s)
	}

	return selected, nil
}

// shuffled returns 0..count-1 in random order.
func shuffled(count int) []int {
	return lo.Shuffle(lo.Range(count))
}

func pushBack(input []int) (err error) {
	var arr dynarr.Array[int]
	defer arr.Release()

	for _, v := range input {
		if err = arr.PushBack(v); err != nil {
			return
		}
	}

	return
}

func pushBackReserved(input []int) (err error) {
	var arr dynarr.Array[int]
	defer arr.Release()

	if err = arr.Reserve(len(input)); err != nil {
		return
	}

	for _, v := range input {
		if err = arr.PushBack(v); err != nil {
			return
		}
	}

	return
}

func sliceAppend(input []int) error {
	var s []int

	for _, v := range input {
		s = append(s, v)
	}

	if len(s) != len(input) {
		return errors.New("slice-append lost elements")
	}

	return nil
}

func insertFront(input []int) (err error) {
	var arr dynarr.Array[int]
	defer arr.Release()

	for _, v := range input[:len(input)/100] {
		if _, err = arr.Insert(0, v); err != nil {
			return
		}
	}

	return
}

func eraseFront(input []int) (err error) {
	arr, err := dynarr.FromSlice(input[:len(input)/100])

	if err != nil {
		return
	}

	defer arr.Release()

	for !arr.IsEmpty() {
		if _, err = arr.Erase(0); err != nil {
			return
		}
	}

	return
}

func sortShuffled(input []int) error {
	arr, err := sorted(input)
	arr.Release()
	return err
}

func sorted(input []int) (arr dynarr.Array[int], err error) {
	if arr, err = dynarr.FromSlice(input); err != nil {
		return
	}

	slices.SortFunc(arr.Slice(), cmp.Compare[int])

	if !slices.IsSorted(arr.Slice()) {
		arr.Release()
		return arr, errors.New("sort produced an unsorted sequence")
	}

	return
}

func fixedFill(input []int) (err error) {
	var arr fixarr.Array[int, fillSize]
	defer arr.Release()

	for i := 0; i <= len(input)/arr.Len(); i++ {
		if err = arr.Fill(i); err != nil {
			return
		}
	}

	if arr.Back() != len(input)/arr.Len() {
		return errors.New("fixed-fill left a stale value")
	}

	return
}
