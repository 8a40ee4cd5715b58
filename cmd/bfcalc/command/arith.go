// Copyright 2020 Aleksandr Demakin. All rights reserved.

package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdva/bigfloat"
)

var (
	Div = &cobra.Command{
		Use:   "div <x> <y>",
		Short: "Divides x by y.",
		Args:  cobra.ExactArgs(2),
		RunE:  commandDiv,
	}
	Fmod = &cobra.Command{
		Use:   "fmod <x> <y>",
		Short: "Computes x - n·y with n the quotient truncated toward zero.",
		Args:  cobra.ExactArgs(2),
		RunE:  commandFmod,
	}
	Rem = &cobra.Command{
		Use:   "rem <x> <y>",
		Short: "Computes x - n·y with n the quotient rounded to nearest even, and the low bits of n.",
		Args:  cobra.ExactArgs(2),
		RunE:  commandRem,
	}
)

func commandDiv(cmd *cobra.Command, args []string) error {
	ops, err := operands(args)
	if err != nil {
		return err
	}
	z := bigfloat.New(prec)
	report(cmd, z, ctx.Quo(z, ops[0], ops[1], mode))
	return nil
}

func commandFmod(cmd *cobra.Command, args []string) error {
	ops, err := operands(args)
	if err != nil {
		return err
	}
	z := bigfloat.New(prec)
	report(cmd, z, ctx.Fmod(z, ops[0], ops[1], mode))
	return nil
}

func commandRem(cmd *cobra.Command, args []string) error {
	ops, err := operands(args)
	if err != nil {
		return err
	}
	z := bigfloat.New(prec)
	q, inex := ctx.Remquo(z, ops[0], ops[1], mode)
	report(cmd, z, inex)
	fmt.Fprintf(cmd.OutOrStdout(), "quotient: %d\n", q)
	return nil
}

func init() {
	Root.AddCommand(Div)
	Root.AddCommand(Fmod)
	Root.AddCommand(Rem)
}
