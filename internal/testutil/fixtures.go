package testutil

// SampleConfigYAML is the project config written by SetupProject. The
// sequences name the files SetupProject creates.
const SampleConfigYAML = `output_dir: outputs
env_dir: .venv
manifest: requirements.txt
scripts:
  - scripts/columns.py
  - scripts/inflation.py
notebooks:
  - notebooks/01_dataframes.ipynb
  - notebooks/02_series.ipynb
`

// SampleManifest provides a small pinned requirements file.
const SampleManifest = `numpy==1.26.4
pandas==2.2.2
matplotlib==3.9.0
`
