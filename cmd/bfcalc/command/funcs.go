// Copyright 2020 Aleksandr Demakin. All rights reserved.

package command

import (
	"github.com/spf13/cobra"

	"github.com/avdva/bigfloat"
)

var (
	Pi = &cobra.Command{
		Use:   "pi",
		Short: "Prints pi.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return constant(cmd, ctx.Pi)
		},
	}
	Ln2 = &cobra.Command{
		Use:   "ln2",
		Short: "Prints the natural logarithm of 2.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return constant(cmd, ctx.Log2)
		},
	}
	Log = &cobra.Command{
		Use:   "log <x>",
		Short: "Computes the natural logarithm of x.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return unary(cmd, args[0], ctx.Log)
		},
	}
	Atanh = &cobra.Command{
		Use:   "atanh <x>",
		Short: "Computes the inverse hyperbolic tangent of x.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return unary(cmd, args[0], ctx.Atanh)
		},
	}
)

func constant(cmd *cobra.Command, f func(z *bigfloat.Float, mode bigfloat.Mode) int) error {
	z := bigfloat.New(prec)
	report(cmd, z, f(z, mode))
	return nil
}

func unary(cmd *cobra.Command, arg string, f func(z, x *bigfloat.Float, mode bigfloat.Mode) int) error {
	x, err := operand(arg)
	if err != nil {
		return err
	}
	z := bigfloat.New(prec)
	report(cmd, z, f(z, x, mode))
	return nil
}

func init() {
	Root.AddCommand(Pi)
	Root.AddCommand(Ln2)
	Root.AddCommand(Log)
	Root.AddCommand(Atanh)
}
