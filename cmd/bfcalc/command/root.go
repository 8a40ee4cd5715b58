// Copyright 2020 Aleksandr Demakin. All rights reserved.

package command

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avdva/bigfloat"
	"github.com/avdva/bigfloat/textconv"
)

var (
	cfg = viper.New()

	ctx    *bigfloat.Context
	logger *logrus.Logger
	prec   uint
	mode   bigfloat.Mode

	Root = &cobra.Command{
		Use:   "bfcalc",
		Short: "bfcalc evaluates correctly rounded binary floating-point operations.",
		Long: "`bfcalc` computes a single operation at the given precision and rounding mode.\n\n" +
			"Operands are decimal numbers, or binary ones with a 0b prefix such as 0b1.011E-3.\n" +
			"Every flag can also be set through a BFCALC_ environment variable, e.g. BFCALC_PREC=113.",
		PersistentPreRunE: setup,
		SilenceUsage:      true,
	}
)

func init() {
	fs := Root.PersistentFlags()
	fs.Uint("prec", 53, "Precision of operands and result, in bits.")
	fs.String("mode", bigfloat.ToNearestEven.String(), "Rounding mode: ToNearestEven, ToZero, ToPositiveInf, ToNegativeInf, AwayFromZero, or one of N, Z, U, D, A.")
	fs.Int64("emin", bigfloat.DefaultEmin, "Smallest exponent.")
	fs.Int64("emax", bigfloat.DefaultEmax, "Largest exponent.")
	fs.Int32("places", -1, "Fractional digits of the decimal output, -1 for the exact value.")
	fs.BoolP("verbose", "v", false, "Log precision escalation.")
	_ = cfg.BindPFlags(fs)
	cfg.SetEnvPrefix("BFCALC")
	cfg.AutomaticEnv()
}

func setup(cmd *cobra.Command, args []string) error {
	logger = logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if cfg.GetBool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}

	prec = cfg.GetUint("prec")
	if prec < bigfloat.MinPrec || prec > bigfloat.MaxPrec {
		return fmt.Errorf("precision %d outside [%d, %d]", prec, bigfloat.MinPrec, bigfloat.MaxPrec)
	}
	var err error
	if mode, err = bigfloat.ParseMode(cfg.GetString("mode")); err != nil {
		return err
	}

	ctx = bigfloat.NewContext()
	ctx.Logger = logger
	if err := ctx.SetEmin(bigfloat.ExpMin); err != nil {
		return err
	}
	if err := ctx.SetEmin(cfg.GetInt64("emin")); err != nil {
		return fmt.Errorf("invalid exponent range: %w", err)
	}
	if err := ctx.SetEmax(cfg.GetInt64("emax")); err != nil {
		return fmt.Errorf("invalid exponent range: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"prec": prec,
		"mode": mode,
		"emin": ctx.Emin(),
		"emax": ctx.Emax(),
	}).Debug("bfcalc: context ready")
	return nil
}

// operand parses s at the working precision. The flags raised while parsing
// are dropped so that only the operation reports its own.
func operand(s string) (*bigfloat.Float, error) {
	x := bigfloat.New(prec)
	parse := textconv.ParseDecimal
	if strings.Contains(s, "0b") || strings.Contains(s, "@") {
		parse = textconv.ParseBinary
	}
	inex, err := parse(ctx, x, s, mode)
	if err != nil {
		return nil, fmt.Errorf("operand %q: %w", s, err)
	}
	if inex != 0 {
		logger.WithFields(logrus.Fields{
			"operand": s,
			"value":   x.String(),
		}).Warn("bfcalc: operand was rounded")
	}
	ctx.ClearFlags()
	return x, nil
}

func operands(args []string) ([]*bigfloat.Float, error) {
	res := make([]*bigfloat.Float, 0, len(args))
	for _, s := range args {
		x, err := operand(s)
		if err != nil {
			return nil, err
		}
		res = append(res, x)
	}
	return res, nil
}

func report(cmd *cobra.Command, z *bigfloat.Float, inex int) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "binary:  %s\n", z)
	fmt.Fprintf(w, "decimal: %s\n", textconv.FormatDecimal(z, cfg.GetInt32("places")))
	fmt.Fprintf(w, "inexact: %d\n", inex)
	fmt.Fprintf(w, "flags:   %s\n", ctx.Flags())
}
