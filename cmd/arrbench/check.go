package main

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/webbmaffian/go-arr/dynarr"
	"github.com/webbmaffian/go-arr/fixarr"
	"github.com/webbmaffian/go-arr/internal/log"
	"go.uber.org/zap"
)

var checkCommand = &cobra.Command{
	Use:   "check",
	Short: "Run the container self-checks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(checks)
	},
}

type check struct {
	name string
	fn   func() error
}

func runChecks(list []check) error {
	for _, c := range list {
		if err := c.fn(); err != nil {
			return errors.Wrapf(err, "check %s", c.name)
		}

		log.Logger().Info("check passed", zap.String("check", c.name))
	}

	log.Logger().Info("all checks passed", zap.Int("checks", len(list)))
	return nil
}

func expect(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}

	return errors.Errorf(format, args...)
}

type (
	zeroSize  struct{}
	twoSize   struct{}
	threeSize struct{}
	fiveSize  struct{}
)

func (zeroSize) Size() int  { return 0 }
func (twoSize) Size() int   { return 2 }
func (threeSize) Size() int { return 3 }
func (fiveSize) Size() int  { return 5 }

var checks = []check{
	{"fixed/construct", func() error {
		_ = fixarr.New[int, fiveSize]()
		arr := fixarr.Of[int, threeSize](1, 2, 3)
		return expect(slices.Equal(arr.Slice(), []int{1, 2, 3}), "got %v", arr.Slice())
	}},
	{"fixed/at", func() error {
		arr := fixarr.Of[int, threeSize](1, 2, 3)
		_, err := arr.At(5)
		return expect(errors.Is(err, fixarr.ErrOutOfRange), "At(5) returned %v", err)
	}},
	{"fixed/front-back", func() error {
		arr := fixarr.Of[int, threeSize](1, 2, 3)
		return expect(arr.Front() == 1 && arr.Back() == 3, "front %d, back %d", arr.Front(), arr.Back())
	}},
	{"fixed/zero-size", func() error {
		var arr fixarr.Array[int, zeroSize]
		n := lo.CountBy(arr.Slice(), func(int) bool { return true })
		return expect(n == 0 && arr.IsEmpty(), "zero-sized array yielded %d values", n)
	}},
	{"fixed/iterate", func() error {
		arr := fixarr.Of[int, threeSize](1, 2, 3)
		return checkIteration(arr.Values(), arr.Backward())
	}},
	{"fixed/modify", func() error {
		var a fixarr.Array[int, threeSize]

		if err := a.Fill(314); err != nil {
			return err
		}

		b := fixarr.Of[int, threeSize](1, 2, 3)
		a.Swap(&b)

		return expect(slices.Equal(a.Slice(), []int{1, 2, 3}) && slices.Equal(b.Slice(), []int{314, 314, 314}),
			"after swap %v and %v", a.Slice(), b.Slice())
	}},
	{"fixed/complex", func() error {
		str := fixarr.Of[string, twoSize]("pok", "acs")

		var nested fixarr.Array[fixarr.Array[int, twoSize], twoSize]
		nested.Ref(0).Set(0, 1)
		nested.Ref(0).Set(1, 2)
		nested.Ref(1).Set(0, 3)
		nested.Ref(1).Set(1, 4)

		return expect(str.Get(0) == "pok" && str.Get(1) == "acs" && nested.Ref(0).Get(0) == 1 && nested.Ref(1).Get(1) == 4,
			"got %v and %v", str.Slice(), nested.Slice())
	}},
	{"fixed/sort", func() error {
		arr := fixarr.Of[int, fiveSize](5, 2, 3, 1, 4)
		slices.SortFunc(arr.Slice(), cmp.Compare[int])
		return expect(slices.Equal(arr.Slice(), []int{1, 2, 3, 4, 5}), "got %v", arr.Slice())
	}},
	{"dynamic/construct", func() error {
		var empty dynarr.Array[int]
		filled, err := dynarr.Make(3, 314)

		if err != nil {
			return err
		}

		arr := dynarr.Of(1, 2, 3)
		return expect(empty.IsEmpty() && slices.Equal(filled.Slice(), []int{314, 314, 314}) && slices.Equal(arr.Slice(), []int{1, 2, 3}),
			"got %v and %v", filled.Slice(), arr.Slice())
	}},
	{"dynamic/at", func() error {
		arr := dynarr.Of(1, 2, 3)
		_, err := arr.At(5)
		return expect(errors.Is(err, dynarr.ErrOutOfRange), "At(5) returned %v", err)
	}},
	{"dynamic/front-back", func() error {
		arr := dynarr.Of(1, 2, 3)
		return expect(arr.Front() == 1 && arr.Back() == 3, "front %d, back %d", arr.Front(), arr.Back())
	}},
	{"dynamic/iterate", func() error {
		arr := dynarr.Of(1, 2, 3)
		return checkIteration(arr.Values(), arr.Backward())
	}},
	{"dynamic/capacity", func() error {
		var arr dynarr.Array[int]

		if !arr.IsEmpty() {
			return errors.New("new array is not empty")
		}

		if err := arr.Reserve(5); err != nil {
			return err
		}

		for i := 1; i <= 3; i++ {
			if err := arr.PushBack(i); err != nil {
				return err
			}
		}

		if arr.Len() != 3 || arr.Cap() < 5 {
			return errors.Errorf("length %d, capacity %d", arr.Len(), arr.Cap())
		}

		if err := arr.ShrinkToFit(); err != nil {
			return err
		}

		return expect(arr.Cap() == 3, "capacity %d after shrink", arr.Cap())
	}},
	{"dynamic/modify", func() error {
		arr := dynarr.Of(1, 2, 3)

		if err := arr.PushBack(arr.Get(1)); err != nil {
			return err
		}

		if arr.Len() != 4 || arr.Get(3) != 2 {
			return errors.Errorf("self push back gave %v", arr.Slice())
		}

		arr.PopBack()
		n := arr.Len()
		arr.Clear()
		return expect(n == 3 && arr.IsEmpty(), "length %d after pop, %d after clear", n, arr.Len())
	}},
	{"dynamic/insert-erase-swap", func() error {
		a := dynarr.Of(1, 2, 3)
		pos, err := a.Insert(1, 314)

		if err != nil {
			return err
		}

		if a.Get(pos) != 314 || a.Len() != 4 {
			return errors.Errorf("insert gave %v", a.Slice())
		}

		if pos, err = a.Erase(0); err != nil {
			return err
		}

		if a.Get(pos) != 314 || a.Len() != 3 {
			return errors.Errorf("erase gave %v", a.Slice())
		}

		b := dynarr.Of(1, 2, 3)
		a.Swap(&b)
		return expect(a.Get(0) == 1 && b.Get(0) == 314 && a.Len() == 3 && b.Len() == 3,
			"after swap %v and %v", a.Slice(), b.Slice())
	}},
	{"dynamic/complex", func() error {
		str := dynarr.Of("pok", "acs", "os")

		var nested dynarr.Array[dynarr.Array[int]]
		defer nested.Release()

		for range 2 {
			if err := nested.PushBack(dynarr.Of(1, 2, 3)); err != nil {
				return err
			}
		}

		return expect(slices.Equal(str.Slice(), []string{"pok", "acs", "os"}) && nested.Ref(0).Get(1) == 2 && nested.Ref(1).Get(2) == 3,
			"got %v and %v", str.Slice(), nested.Slice())
	}},
	{"dynamic/sort", func() error {
		arr := dynarr.Of(3, 1, 2)
		slices.SortFunc(arr.Slice(), cmp.Compare[int])
		return expect(slices.Equal(arr.Slice(), []int{1, 2, 3}), "got %v", arr.Slice())
	}},
}

func checkIteration(values func(func(int) bool), backward func(func(int, int) bool)) error {
	sum := 0

	for v := range values {
		sum += v
	}

	var reversed []int

	for _, v := range backward {
		reversed = append(reversed, v)
	}

	return expect(sum == 6 && slices.Equal(reversed, []int{3, 2, 1}), "sum %d, reversed %v", sum, reversed)
}
