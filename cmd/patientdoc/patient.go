package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"patientdoc/internal/service"
	"patientdoc/internal/storage"
)

func newListCommand(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List patients, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			patients := a.patients.Search(ctx, query)
			return printPatients(cmd.OutOrStdout(), patients, a.patients.Stats(ctx).Count)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive part of the full name")

	return cmd
}

func newAddCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in service.PatientInput
			applyPatientFlags(cmd, &in)

			p, err := a.patients.Add(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Data saved. Added %s.\n", displayName(p))
			return nil
		},
	}

	addPatientFlags(cmd)

	return cmd
}

func newUpdateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <index>",
		Short: "Change the patient at a position of the full list",
		Long: `Change the patient at a position of the full, unfiltered list as shown by
"patientdoc list". Only the given fields are changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			all := a.patients.List(ctx)
			if index >= len(all) {
				return fmt.Errorf("no patient at index %d, the list has %d", index, len(all))
			}
			in := service.InputFromPatient(all[index])
			applyPatientFlags(cmd, &in)

			p, err := a.patients.UpdateAt(ctx, index, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Data saved. Updated %s.\n", displayName(p))
			return nil
		},
	}

	addPatientFlags(cmd)

	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete the patient at a position of the (filtered) list",
		Long: `Delete the patient at a position of the list printed by
"patientdoc list --query <query>". Pass the same query so the index refers to
the same row.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			p, err := a.patients.DeleteVisible(cmd.Context(), query, index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", displayName(p))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "query the index refers to")

	return cmd
}

// patientFields maps flag names to the input field they set.
var patientFields = []struct {
	flag  string
	usage string
	field func(*service.PatientInput) *string
}{
	{"name", "full name", func(in *service.PatientInput) *string { return &in.FullName }},
	{"age", "age", func(in *service.PatientInput) *string { return &in.Age }},
	{"weight", "weight in kilograms", func(in *service.PatientInput) *string { return &in.WeightKg }},
	{"height", "height in centimeters", func(in *service.PatientInput) *string { return &in.HeightCm }},
	{"diagnosis", "diagnosis", func(in *service.PatientInput) *string { return &in.Diagnosis }},
	{"allergies", "allergies", func(in *service.PatientInput) *string { return &in.Allergies }},
	{"medications", "medications", func(in *service.PatientInput) *string { return &in.Medications }},
	{"sex", "sex, usually Male or Female", func(in *service.PatientInput) *string { return &in.Sex }},
}

func addPatientFlags(cmd *cobra.Command) {
	for _, f := range patientFields {
		cmd.Flags().String(f.flag, "", f.usage)
	}
}

// applyPatientFlags copies every flag the user set into in.
func applyPatientFlags(cmd *cobra.Command, in *service.PatientInput) {
	for _, f := range patientFields {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		v, _ := cmd.Flags().GetString(f.flag)
		*f.field(in) = v
	}
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("index must be a non-negative number, got %q", s)
	}
	return i, nil
}

func printPatients(w io.Writer, patients []storage.Patient, total int) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "FULL NAME", "AGE", "WEIGHT (KG)", "HEIGHT (CM)", "DIAGNOSIS", "SEX"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("  ")
	for i, p := range patients {
		table.Append([]string{strconv.Itoa(i), p.FullName, p.Age, p.WeightKg, p.HeightCm, p.Diagnosis, p.Sex})
	}
	table.Render()

	_, err := fmt.Fprintf(w, "%d of %d patients\n", len(patients), total)
	return err
}

func displayName(p storage.Patient) string {
	if p.FullName == "" {
		return "unnamed patient"
	}
	return p.FullName
}
